package transport

type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Artist      string  `json:"artist"`
	ArtistID    uint    `json:"artist_id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CoverURL    string  `json:"cover_url"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	ArtistID    *uint   `json:"artist_id"`
	ArtistName  *string `json:"artist_name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CoverURL    *string `json:"cover_url"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	ArtistID    *uint    `json:"artist_id"`
	ArtistName  *string  `json:"artist_name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CoverURL    *string  `json:"cover_url"`
}

package transport

type CartRequest struct {
	ProductIDs []string `json:"product_ids"`
}

type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}

type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

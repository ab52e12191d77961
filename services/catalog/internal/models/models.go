package models

type Artist struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name"`
}

// VinylRecord is the aggregate root of the catalog. The artist row is
// preloaded wherever records leave the repository so responses can be
// flattened without extra queries.
type VinylRecord struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:255;not null;index" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	CoverURL    string     `gorm:"size:500" json:"cover_url"`
	ArtistID    uint       `gorm:"not null;index" json:"artist_id"`
	Artist      Artist     `json:"-"`
	Categories  []Category `gorm:"many2many:vinyl_record_categories" json:"-"`
}

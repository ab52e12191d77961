package models

// Prompt rows use string primary keys, e.g. "recommendation_prompt".
// Version tracks which compiled-in default the template came from; a
// manual PUT keeps the version so only a real default bump overwrites it.
type Prompt struct {
	ID       string `gorm:"size:255;primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Template string `gorm:"type:text;not null" json:"template"`
	Version  int    `gorm:"not null;default:0" json:"version"`
}

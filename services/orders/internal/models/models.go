package models

import "time"

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	OrderID    string      `gorm:"size:36;uniqueIndex;not null" json:"order_id"`
	UserEmail  string      `gorm:"size:255;index;not null" json:"user_email"`
	TotalPrice float64     `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem keeps no foreign key to the catalog: a record deleted from the
// catalog must not invalidate past orders.
type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	OrderID         uint    `gorm:"index;not null" json:"-"`
	VinylID         uint    `json:"vinyl_id"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	PriceAtPurchase float64 `gorm:"not null" json:"price_at_purchase"`
}

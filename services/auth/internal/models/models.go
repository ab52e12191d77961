package models

type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`
}

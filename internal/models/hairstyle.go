package models

import "time"

type Hairstyle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint      `gorm:"not null;index" json:"owner_id"`
	Owner   ShopOwner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	ImagePath   string `gorm:"size:255;not null" json:"image_path"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

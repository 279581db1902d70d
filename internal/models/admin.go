package models

import "time"

// Admin is expected to hold a single row; nothing enforces that beyond the
// seeding logic inserting one account only when the table is empty.
type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LoginID      string `gorm:"size:50;uniqueIndex;not null" json:"login_id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// CustomerNumberPrefix is prepended to the mobile number at registration.
// The resulting customer number is never recomputed afterwards.
const CustomerNumberPrefix = "CUST-"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string  `gorm:"size:100;not null" json:"name"`
	Mobile string  `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Email  *string `gorm:"size:100;uniqueIndex" json:"email"`

	PasswordHash   string `gorm:"size:255;not null" json:"-"`
	CustomerNumber string `gorm:"size:30;uniqueIndex" json:"customer_number"`
	ProfileImage   string `gorm:"size:255" json:"profile_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

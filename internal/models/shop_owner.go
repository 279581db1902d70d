package models

import "time"

// Owner account lifecycle. New registrations always start pending and only
// an admin moves them between states.
const (
	OwnerStatusPending  = "pending"
	OwnerStatusActive   = "active"
	OwnerStatusRejected = "rejected"
)

type ShopOwner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopName  string  `gorm:"size:100;not null" json:"shop_name"`
	OwnerName string  `gorm:"size:100;not null" json:"owner_name"`
	Mobile    string  `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Email     *string `gorm:"size:100;uniqueIndex" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Status       string `gorm:"size:20;default:'pending'" json:"status"`
	Logo         string `gorm:"size:255" json:"logo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

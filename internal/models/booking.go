package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	OwnerID uint      `gorm:"not null;index" json:"owner_id"`
	Owner   ShopOwner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Requester details as typed into the booking form; the customer row
	// keeps its own copy and the two may diverge.
	Name   string `gorm:"size:100;not null" json:"name"`
	Mobile string `gorm:"size:20;not null" json:"mobile"`

	TimeSlot string `gorm:"size:100;not null" json:"time_slot"`
	Status   string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

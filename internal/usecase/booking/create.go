package booking

import (
	"context"

	domain "github.com/rrparlour/parlour-booking/internal/domain/booking"
	"github.com/rrparlour/parlour-booking/internal/models"
)

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

type CreateBookingInput struct {
	CustomerID uint
	OwnerID    uint
	Name       string
	Mobile     string
	TimeSlot   string
}

// Execute inserts a pending booking. Any number of bookings may target the
// same owner and time slot; conflict resolution is out of scope.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	input CreateBookingInput,
) (*models.Booking, error) {

	b := &models.Booking{
		CustomerID: input.CustomerID,
		OwnerID:    input.OwnerID,
		Name:       input.Name,
		Mobile:     input.Mobile,
		TimeSlot:   input.TimeSlot,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

package booking

import (
	"context"

	"github.com/rrparlour/parlour-booking/internal/models"
)

type Repository interface {
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateStatusForOwner changes the booking status only where the row
	// belongs to ownerID, and reports how many rows matched. Zero is not
	// an error: a booking owned by someone else is simply untouched.
	UpdateStatusForOwner(
		ctx context.Context,
		bookingID uint,
		ownerID uint,
		status Status,
	) (int64, error)
}

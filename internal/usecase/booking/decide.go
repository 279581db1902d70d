package booking

import (
	"context"

	domain "github.com/rrparlour/parlour-booking/internal/domain/booking"
)

type DecideBooking struct {
	repo domain.Repository
}

func NewDecideBooking(repo domain.Repository) *DecideBooking {
	return &DecideBooking{repo: repo}
}

// Execute applies the owner's decision. Ownership is the only authorization
// check: the update is scoped to the acting owner's id, and a booking held
// by a different owner matches zero rows. Callers treat that as success,
// matching the form flow's behavior.
func (uc *DecideBooking) Execute(
	ctx context.Context,
	ownerID uint,
	bookingID uint,
	action string,
) (domain.Status, int64, error) {

	status := domain.StatusForAction(action)

	affected, err := uc.repo.UpdateStatusForOwner(ctx, bookingID, ownerID, status)
	if err != nil {
		return status, 0, err
	}

	return status, affected, nil
}

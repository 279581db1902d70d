package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/rrparlour/parlour-booking/internal/domain/booking"
	"github.com/rrparlour/parlour-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var _ domain.Repository = (*BookingGormRepository)(nil)

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateStatusForOwner(
	ctx context.Context,
	bookingID uint,
	ownerID uint,
	status domain.Status,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND owner_id = ?", bookingID, ownerID).
		Update("status", string(status))

	return res.RowsAffected, res.Error
}

package handlers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/dto"
	"github.com/rrparlour/parlour-booking/internal/models"
)

// listActiveCatalog returns every hairstyle whose shop is active. Visibility
// is enforced by the join against shop_owners, never by filtering hairstyle
// rows on their own.
func listActiveCatalog(db *gorm.DB) ([]dto.CatalogItem, error) {
	var items []dto.CatalogItem
	err := db.Table("hairstyles").
		Select("hairstyles.id, hairstyles.owner_id, hairstyles.name, hairstyles.image_path, hairstyles.description, shop_owners.shop_name").
		Joins("JOIN shop_owners ON shop_owners.id = hairstyles.owner_id").
		Where("shop_owners.status = ?", models.OwnerStatusActive).
		Order("hairstyles.id DESC").
		Scan(&items).Error
	return items, err
}

func listActiveOwners(db *gorm.DB) ([]dto.OwnerOption, error) {
	var owners []dto.OwnerOption
	err := db.Model(&models.ShopOwner{}).
		Select("id, shop_name").
		Where("status = ?", models.OwnerStatusActive).
		Order("shop_name ASC").
		Scan(&owners).Error
	return owners, err
}

// latestBookingForCustomer returns the customer's most recent booking, or
// nil when they have none.
func latestBookingForCustomer(db *gorm.DB, customerID uint) (*dto.CustomerBooking, error) {
	var booking dto.CustomerBooking
	err := db.Table("bookings").
		Select("bookings.id, bookings.owner_id, bookings.name, bookings.mobile, bookings.time_slot, bookings.status, shop_owners.shop_name").
		Joins("JOIN shop_owners ON shop_owners.id = bookings.owner_id").
		Where("bookings.customer_id = ?", customerID).
		Order("bookings.id DESC").
		Limit(1).
		Take(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func listBookingsForOwner(db *gorm.DB, ownerID uint) ([]dto.OwnerBooking, error) {
	var bookings []dto.OwnerBooking
	err := db.Table("bookings").
		Select("bookings.id, bookings.customer_id, bookings.name, bookings.mobile, bookings.time_slot, bookings.status, customers.name AS customer_name").
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Where("bookings.owner_id = ?", ownerID).
		Order("bookings.id DESC").
		Scan(&bookings).Error
	return bookings, err
}

// currentTagline reads the singleton settings row, falling back to the
// seeded default when the row is missing.
func currentTagline(db *gorm.DB, fallback string) string {
	var setting models.Setting
	if err := db.First(&setting, models.SettingsRowID).Error; err != nil {
		return fallback
	}
	return setting.Tagline
}

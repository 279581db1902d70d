package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/models"
	"github.com/rrparlour/parlour-booking/internal/session"
	"github.com/rrparlour/parlour-booking/internal/storage"
	ucbooking "github.com/rrparlour/parlour-booking/internal/usecase/booking"
)

type OwnerHandler struct {
	db            *gorm.DB
	store         storage.Store
	decideBooking *ucbooking.DecideBooking
	logg          zerolog.Logger
}

func NewOwnerHandler(
	db *gorm.DB,
	store storage.Store,
	decideBooking *ucbooking.DecideBooking,
	logg zerolog.Logger,
) *OwnerHandler {
	return &OwnerHandler{
		db:            db,
		store:         store,
		decideBooking: decideBooking,
		logg:          logg,
	}
}

func (h *OwnerHandler) Dashboard(c *gin.Context) {
	st := middleware.CurrentSession(c)

	var owner models.ShopOwner
	if err := h.db.First(&owner, st.UserID).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var styles []models.Hairstyle
	if err := h.db.Where("owner_id = ?", st.UserID).
		Order("id DESC").
		Find(&styles).Error; err != nil {

		flashAndRedirect(c, "/", "Failed to load catalog.", session.FlashDanger)
		return
	}

	bookings, err := listBookingsForOwner(h.db, st.UserID)
	if err != nil {
		flashAndRedirect(c, "/", "Failed to load bookings.", session.FlashDanger)
		return
	}

	c.HTML(http.StatusOK, "owner_dashboard.html", gin.H{
		"Owner":    owner,
		"Styles":   styles,
		"Bookings": bookings,
		"Flashes":  st.PopFlashes(),
	})
}

// AddHairstyle accepts any number of images in one submission. Name and
// description are shared by every row created. Files are independent: one
// failed save is skipped and logged while earlier inserts stay committed.
func (h *OwnerHandler) AddHairstyle(c *gin.Context) {
	st := middleware.CurrentSession(c)

	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))

	if name == "" {
		flashAndRedirect(c, "/owner/dashboard", "Hairstyle name required.", session.FlashWarning)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		flashAndRedirect(c, "/owner/dashboard", "Invalid upload: "+err.Error(), session.FlashDanger)
		return
	}

	for _, fh := range form.File["photos"] {
		if fh == nil || fh.Filename == "" {
			continue
		}

		path, err := saveUpload(c.Request.Context(), h.store, fh)
		if err != nil {
			h.logg.Warn().Err(err).Str("filename", fh.Filename).Msg("failed to store hairstyle image")
			continue
		}

		style := models.Hairstyle{
			OwnerID:     st.UserID,
			Name:        name,
			ImagePath:   path,
			Description: description,
		}
		if err := h.db.Create(&style).Error; err != nil {
			h.logg.Warn().Err(err).Str("filename", fh.Filename).Msg("failed to insert hairstyle row")
		}
	}

	flashAndRedirect(c, "/owner/dashboard", "Hairstyle(s) added successfully!", session.FlashSuccess)
}

// BookingAction applies an accept/reject decision. The update is scoped to
// the acting owner; a booking id held by someone else matches nothing and
// the flow still reports the decision notice.
func (h *OwnerHandler) BookingAction(c *gin.Context) {
	st := middleware.CurrentSession(c)

	bookingID, err := strconv.ParseUint(c.PostForm("booking_id"), 10, 64)
	if err != nil {
		flashAndRedirect(c, "/owner/dashboard", "Invalid booking id.", session.FlashWarning)
		return
	}
	action := c.PostForm("action")

	status, affected, err := h.decideBooking.Execute(c.Request.Context(), st.UserID, uint(bookingID), action)
	if err != nil {
		flashAndRedirect(c, "/owner/dashboard", "Failed to update booking: "+err.Error(), session.FlashDanger)
		return
	}
	if affected == 0 {
		h.logg.Debug().Uint64("booking_id", bookingID).Uint("owner_id", st.UserID).
			Msg("booking decision matched no rows")
	}

	flashAndRedirect(c, "/owner/dashboard", fmt.Sprintf("Booking %s!", status), session.FlashInfo)
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/models"
	"github.com/rrparlour/parlour-booking/internal/session"
	"github.com/rrparlour/parlour-booking/internal/storage"
	ucbooking "github.com/rrparlour/parlour-booking/internal/usecase/booking"
)

type CustomerHandler struct {
	db              *gorm.DB
	store           storage.Store
	createBooking   *ucbooking.CreateBooking
	searchAvailable bool
}

func NewCustomerHandler(
	db *gorm.DB,
	store storage.Store,
	createBooking *ucbooking.CreateBooking,
	searchAvailable bool,
) *CustomerHandler {
	return &CustomerHandler{
		db:              db,
		store:           store,
		createBooking:   createBooking,
		searchAvailable: searchAvailable,
	}
}

func (h *CustomerHandler) Dashboard(c *gin.Context) {
	st := middleware.CurrentSession(c)

	var customer models.Customer
	if err := h.db.First(&customer, st.UserID).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	styles, err := listActiveCatalog(h.db)
	if err != nil {
		flashAndRedirect(c, "/", "Failed to load catalog.", session.FlashDanger)
		return
	}

	owners, err := listActiveOwners(h.db)
	if err != nil {
		flashAndRedirect(c, "/", "Failed to load shops.", session.FlashDanger)
		return
	}

	lastBooking, err := latestBookingForCustomer(h.db, st.UserID)
	if err != nil {
		flashAndRedirect(c, "/", "Failed to load bookings.", session.FlashDanger)
		return
	}

	c.HTML(http.StatusOK, "customer_dashboard.html", gin.H{
		"Customer":        customer,
		"Styles":          styles,
		"Owners":          owners,
		"LastBooking":     lastBooking,
		"SearchAvailable": h.searchAvailable,
		"Flashes":         st.PopFlashes(),
	})
}

func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	st := middleware.CurrentSession(c)

	name := strings.TrimSpace(c.PostForm("name"))
	mobile := strings.TrimSpace(c.PostForm("mobile"))

	if name == "" || mobile == "" {
		flashAndRedirect(c, "/customer/dashboard", "Name and mobile required.", session.FlashWarning)
		return
	}

	updates := map[string]any{
		"name":   name,
		"mobile": mobile,
		"email":  optionalEmail(c),
	}

	// The image column is touched only when a file actually arrived.
	if fh, err := c.FormFile("profile_image"); err == nil && fh.Filename != "" {
		path, err := saveUpload(c.Request.Context(), h.store, fh)
		if err != nil {
			flashAndRedirect(c, "/customer/dashboard", "Failed to save image: "+err.Error(), session.FlashDanger)
			return
		}
		updates["profile_image"] = path
	}

	if err := h.db.Model(&models.Customer{}).
		Where("id = ?", st.UserID).
		Updates(updates).Error; err != nil {

		flashAndRedirect(c, "/customer/dashboard", "Update failed: "+err.Error(), session.FlashDanger)
		return
	}

	flashAndRedirect(c, "/customer/dashboard", "Profile updated!", session.FlashSuccess)
}

func (h *CustomerHandler) Book(c *gin.Context) {
	st := middleware.CurrentSession(c)

	ownerID, err := strconv.ParseUint(c.PostForm("owner_id"), 10, 64)
	name := strings.TrimSpace(c.PostForm("name"))
	mobile := strings.TrimSpace(c.PostForm("mobile"))
	timeSlot := strings.TrimSpace(c.PostForm("time_slot"))

	if err != nil || name == "" || mobile == "" || timeSlot == "" {
		flashAndRedirect(c, "/customer/dashboard", "All booking fields required.", session.FlashWarning)
		return
	}

	_, err = h.createBooking.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		CustomerID: st.UserID,
		OwnerID:    uint(ownerID),
		Name:       name,
		Mobile:     mobile,
		TimeSlot:   timeSlot,
	})
	if err != nil {
		flashAndRedirect(c, "/customer/dashboard", "Booking failed: "+err.Error(), session.FlashDanger)
		return
	}

	flashAndRedirect(c, "/customer/dashboard", "Appointment booked! Wait for confirmation.", session.FlashSuccess)
}

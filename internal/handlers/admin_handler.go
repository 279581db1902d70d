package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/models"
	"github.com/rrparlour/parlour-booking/internal/security"
	"github.com/rrparlour/parlour-booking/internal/session"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	st := middleware.CurrentSession(c)

	var admin models.Admin
	if err := h.db.First(&admin, st.UserID).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var totalCustomers, totalOwners int64
	h.db.Model(&models.Customer{}).Count(&totalCustomers)
	h.db.Model(&models.ShopOwner{}).Count(&totalOwners)

	var owners []models.ShopOwner
	if err := h.db.Order("id DESC").Find(&owners).Error; err != nil {
		flashAndRedirect(c, "/", "Failed to load owners.", session.FlashDanger)
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Admin":          admin,
		"TotalCustomers": totalCustomers,
		"TotalOwners":    totalOwners,
		"Owners":         owners,
		"Flashes":        st.PopFlashes(),
	})
}

// UpdateProfile always rewrites name and login id; the password is rehashed
// only when a new one was typed.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	st := middleware.CurrentSession(c)

	name := strings.TrimSpace(c.PostForm("name"))
	loginID := strings.TrimSpace(c.PostForm("login_id"))
	password := strings.TrimSpace(c.PostForm("password"))

	if name == "" || loginID == "" {
		flashAndRedirect(c, "/admin/dashboard", "Name and login id required.", session.FlashWarning)
		return
	}

	updates := map[string]any{
		"name":     name,
		"login_id": loginID,
	}

	if password != "" {
		hash, err := security.HashPassword(password)
		if err != nil {
			flashAndRedirect(c, "/admin/dashboard", "Update failed: "+err.Error(), session.FlashDanger)
			return
		}
		updates["password_hash"] = hash
	}

	if err := h.db.Model(&models.Admin{}).
		Where("id = ?", st.UserID).
		Updates(updates).Error; err != nil {

		flashAndRedirect(c, "/admin/dashboard", "Update failed: "+err.Error(), session.FlashDanger)
		return
	}

	flashAndRedirect(c, "/admin/dashboard", "Admin profile updated!", session.FlashSuccess)
}

// OwnerStatus overwrites the owner's status with whatever string the form
// sent. The value is deliberately not checked against the known set; the
// admin form is the only writer and the catalog join treats anything other
// than active as hidden.
func (h *AdminHandler) OwnerStatus(c *gin.Context) {
	ownerID, err := strconv.ParseUint(c.PostForm("owner_id"), 10, 64)
	if err != nil {
		flashAndRedirect(c, "/admin/dashboard", "Invalid owner id.", session.FlashWarning)
		return
	}
	status := c.PostForm("status")

	if err := h.db.Model(&models.ShopOwner{}).
		Where("id = ?", ownerID).
		Update("status", status).Error; err != nil {

		flashAndRedirect(c, "/admin/dashboard", "Failed to update status: "+err.Error(), session.FlashDanger)
		return
	}

	flashAndRedirect(c, "/admin/dashboard", "Owner status set to "+status, session.FlashSuccess)
}

func (h *AdminHandler) Tagline(c *gin.Context) {
	tagline := strings.TrimSpace(c.PostForm("tagline"))

	if err := h.db.Model(&models.Setting{}).
		Where("id = ?", models.SettingsRowID).
		Update("tagline", tagline).Error; err != nil {

		flashAndRedirect(c, "/admin/dashboard", "Failed to update tagline: "+err.Error(), session.FlashDanger)
		return
	}

	flashAndRedirect(c, "/admin/dashboard", "Tagline updated!", session.FlashSuccess)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/models"
	"github.com/rrparlour/parlour-booking/internal/security"
	"github.com/rrparlour/parlour-booking/internal/session"
)

type AuthHandler struct {
	db       *gorm.DB
	sessions *session.Manager
}

func NewAuthHandler(db *gorm.DB, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions}
}

// optionalEmail maps a blank form value to NULL so the unique index never
// trips on two accounts without email.
func optionalEmail(c *gin.Context) *string {
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		return nil
	}
	return &email
}

func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	mobile := strings.TrimSpace(c.PostForm("mobile"))
	password := c.PostForm("password")

	if name == "" || mobile == "" || password == "" {
		flashAndRedirect(c, "/", "Name, mobile and password required.", session.FlashWarning)
		return
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		flashAndRedirect(c, "/", "Registration failed: "+err.Error(), session.FlashDanger)
		return
	}

	customer := models.Customer{
		Name:           name,
		Mobile:         mobile,
		Email:          optionalEmail(c),
		PasswordHash:   hash,
		CustomerNumber: models.CustomerNumberPrefix + mobile,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		// Duplicate mobile/email lands here; the constraint diagnostic is
		// surfaced in the notice rather than propagated.
		flashAndRedirect(c, "/", "Registration failed: "+err.Error(), session.FlashDanger)
		return
	}

	flashAndRedirect(c, "/", "Customer registered successfully. Please login.", session.FlashSuccess)
}

func (h *AuthHandler) RegisterOwner(c *gin.Context) {
	shopName := strings.TrimSpace(c.PostForm("shop_name"))
	ownerName := strings.TrimSpace(c.PostForm("owner_name"))
	mobile := strings.TrimSpace(c.PostForm("mobile"))
	password := c.PostForm("password")

	if shopName == "" || ownerName == "" || mobile == "" || password == "" {
		flashAndRedirect(c, "/", "All fields required.", session.FlashWarning)
		return
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		flashAndRedirect(c, "/", "Registration failed: "+err.Error(), session.FlashDanger)
		return
	}

	// Status is forced to pending whatever the form says; only an admin
	// activates an owner account.
	owner := models.ShopOwner{
		ShopName:     shopName,
		OwnerName:    ownerName,
		Mobile:       mobile,
		Email:        optionalEmail(c),
		PasswordHash: hash,
		Status:       models.OwnerStatusPending,
	}

	if err := h.db.Create(&owner).Error; err != nil {
		flashAndRedirect(c, "/", "Registration failed: "+err.Error(), session.FlashDanger)
		return
	}

	flashAndRedirect(c, "/", "Shop owner registered. Wait for admin approval.", session.FlashSuccess)
}

func (h *AuthHandler) Login(c *gin.Context) {
	role := c.PostForm("role")
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if role == "" || username == "" || password == "" {
		flashAndRedirect(c, "/", "All fields required.", session.FlashDanger)
		return
	}

	switch role {
	case middleware.RoleCustomer:
		var customer models.Customer
		err := h.db.Where("mobile = ? OR email = ?", username, username).First(&customer).Error
		if err == nil && security.CheckPassword(password, customer.PasswordHash) {
			h.establish(c, middleware.RoleCustomer, customer.ID)
			c.Redirect(http.StatusFound, "/customer/dashboard")
			return
		}
		flashAndRedirect(c, "/", "Invalid customer credentials.", session.FlashDanger)

	case middleware.RoleOwner:
		var owner models.ShopOwner
		err := h.db.Where("mobile = ? OR email = ?", username, username).First(&owner).Error
		if err == nil && security.CheckPassword(password, owner.PasswordHash) {
			if owner.Status != models.OwnerStatusActive {
				// Correct credentials on an unapproved account get a
				// distinct outcome, not the generic invalid-credentials one.
				flashAndRedirect(c, "/", "Account pending admin approval.", session.FlashWarning)
				return
			}
			h.establish(c, middleware.RoleOwner, owner.ID)
			c.Redirect(http.StatusFound, "/owner/dashboard")
			return
		}
		flashAndRedirect(c, "/", "Invalid owner credentials.", session.FlashDanger)

	case middleware.RoleAdmin:
		var admin models.Admin
		err := h.db.Where("login_id = ?", username).First(&admin).Error
		if err == nil && security.CheckPassword(password, admin.PasswordHash) {
			h.establish(c, middleware.RoleAdmin, admin.ID)
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		flashAndRedirect(c, "/", "Invalid admin credentials.", session.FlashDanger)

	default:
		c.Redirect(http.StatusFound, "/")
	}
}

func (h *AuthHandler) establish(c *gin.Context, role string, userID uint) {
	if st := middleware.CurrentSession(c); st != nil {
		st.SetIdentity(role, userID)
	}
}

// Logout drops the server-side record and rotates the session id, so a
// leaked pre-logout cookie is dead rather than merely anonymous.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if scope := middleware.CurrentScope(c); scope != nil {
		_ = h.sessions.Destroy(ctx, scope.SID)

		if token, sid, st, err := h.sessions.Issue(ctx); err == nil {
			c.SetCookie(session.CookieName, token, 0, "/", "", false, true)
			scope.SID = sid
			scope.State = st
			st.AddFlash("Logged out successfully.", session.FlashInfo)
		}
	}

	c.Redirect(http.StatusFound, "/")
}

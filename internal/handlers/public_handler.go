package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/db"
	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/session"
)

type PublicHandler struct {
	db              *gorm.DB
	searchAvailable bool
}

func NewPublicHandler(gdb *gorm.DB, searchAvailable bool) *PublicHandler {
	return &PublicHandler{db: gdb, searchAvailable: searchAvailable}
}

// Index renders the landing page: tagline, whether the image search box
// should appear, and any flashes queued by a previous redirect.
func (h *PublicHandler) Index(c *gin.Context) {
	var flashes []session.Flash
	if st := middleware.CurrentSession(c); st != nil {
		flashes = st.PopFlashes()
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Tagline":         currentTagline(h.db, db.DefaultTagline),
		"SearchAvailable": h.searchAvailable,
		"Flashes":         flashes,
	})
}

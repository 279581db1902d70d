package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rrparlour/parlour-booking/internal/search"
)

type SearchHandler struct {
	client *search.Client
	logg   zerolog.Logger
}

func NewSearchHandler(client *search.Client, logg zerolog.Logger) *SearchHandler {
	return &SearchHandler{client: client, logg: logg}
}

// SearchImages is the only JSON route. Provider failures degrade to an empty
// item list so a flaky external dependency never breaks the dashboard.
func (h *SearchHandler) SearchImages(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	items, err := h.client.SearchImages(c.Request.Context(), query)
	if err != nil {
		h.logg.Warn().Err(err).Str("query", query).Msg("image search failed")
		items = make([]search.Item, 0)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

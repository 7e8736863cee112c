// README: Destination handlers (highlights lookup).
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"atlas/internal/places"
)

type DestinationHandler struct {
	places *places.Service
}

func NewDestinationHandler(svc *places.Service) *DestinationHandler {
	return &DestinationHandler{places: svc}
}

// Highlights handles GET /api/destinations/:name/highlights.
func (h *DestinationHandler) Highlights(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"destination": name,
		"highlights":  h.places.Highlights(c.Request.Context(), name, limit),
	})
}

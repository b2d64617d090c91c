// File: handlers/slots.go
package handlers

import (
	"net/http"

	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// SlotsHandler serves the client-facing slot listing.
type SlotsHandler struct {
	Resolver schedule.Service
}

func NewSlotsHandler(resolver schedule.Service) *SlotsHandler {
	return &SlotsHandler{Resolver: resolver}
}

// GetProviderSlotsHandler returns the annotated slot list for one provider
// and date. The date query parameter is required.
func (h *SlotsHandler) GetProviderSlotsHandler(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing provider ID in path", "")
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "expected date=YYYY-MM-DD")
		return
	}

	day, err := h.Resolver.DaySchedule(c.Request.Context(), providerID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

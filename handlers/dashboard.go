package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quotes-api/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

// GetStats returns the aggregated business figures for the dashboard.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.Dashboard.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

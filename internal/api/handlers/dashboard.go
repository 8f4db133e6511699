package handlers

import (
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the admin landing page aggregates
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get dashboard"})
		return
	}

	c.JSON(200, gin.H{"success": true, "dashboard": dashboard})
}

// GetMonthlyStats returns the six-month creation trend
func (h *DashboardHandler) GetMonthlyStats(c *gin.Context) {
	stats, err := h.dashboardService.MonthlyStats()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get stats"})
		return
	}

	c.JSON(200, gin.H{"success": true, "stats": stats})
}

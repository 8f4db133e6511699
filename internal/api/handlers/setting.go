package handlers

import (
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	settingService *services.SettingService
}

func NewSettingHandler(settingService *services.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// GetSettings returns the site settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingService.GetSettings()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get settings"})
		return
	}

	c.JSON(200, gin.H{"success": true, "settings": settings})
}

// UpdateSettings upserts the site settings
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var updates models.Setting
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	settings, err := h.settingService.UpdateSettings(&updates)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update settings"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Settings updated successfully", "settings": settings})
}

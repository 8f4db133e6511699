package handlers

import (
	"errors"
	"strings"

	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeService *services.ThemeService
}

func NewThemeHandler(themeService *services.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// GetThemes lists every theme for the admin panel
func (h *ThemeHandler) GetThemes(c *gin.Context) {
	themes, err := h.themeService.GetThemes()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get themes"})
		return
	}

	c.JSON(200, gin.H{"success": true, "themes": themes})
}

// CreateTheme stores a new theme
func (h *ThemeHandler) CreateTheme(c *gin.Context) {
	var theme models.Theme
	if err := c.ShouldBindJSON(&theme); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}
	if strings.TrimSpace(theme.Name) == "" {
		c.JSON(400, gin.H{"success": false, "message": "Theme name is required"})
		return
	}

	created, err := h.themeService.CreateTheme(&theme)
	if err != nil {
		if errors.Is(err, services.ErrThemeExists) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create theme"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Theme created successfully", "theme": created})
}

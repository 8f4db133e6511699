package services

import (
	"errors"
	"strings"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

var ErrThemeExists = errors.New("a theme with this name already exists")

// defaultThemeColors seeds the palette keys a freshly created theme renders
// with when the request omits them.
var defaultThemeColors = models.StringMap{
	"primary":       "#3B82F6",
	"secondary":     "#10B981",
	"accent":        "#F59E0B",
	"background":    "#FFFFFF",
	"surface":       "#F9FAFB",
	"text":          "#111827",
	"textSecondary": "#6B7280",
}

type ThemeService struct {
	db *gorm.DB
}

func NewThemeService(db *gorm.DB) *ThemeService {
	return &ThemeService{db: db}
}

// GetThemes returns every theme ordered by name
func (s *ThemeService) GetThemes() ([]models.Theme, error) {
	var themes []models.Theme
	if err := s.db.Order("name ASC").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

// CreateTheme stores a new theme. Creating it as active deactivates every
// other theme in the same transaction.
func (s *ThemeService) CreateTheme(theme *models.Theme) (*models.Theme, error) {
	theme.ID = 0
	theme.Name = strings.TrimSpace(theme.Name)

	var existing int64
	s.db.Model(&models.Theme{}).Where("name = ?", theme.Name).Count(&existing)
	if existing > 0 {
		return nil, ErrThemeExists
	}

	if len(theme.Colors) == 0 {
		theme.Colors = defaultThemeColors
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if theme.IsActive {
			if err := tx.Model(&models.Theme{}).Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(theme).Error
	})
	if err != nil {
		return nil, err
	}
	return theme, nil
}

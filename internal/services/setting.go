package services

import (
	"errors"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

type SettingService struct {
	db *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

// GetSettings returns the singleton settings row, or an empty value when
// nothing has been saved yet.
func (s *SettingService) GetSettings() (*models.Setting, error) {
	var setting models.Setting
	err := s.db.First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Setting{}, nil
		}
		return nil, err
	}
	return &setting, nil
}

// UpdateSettings upserts the singleton row
func (s *SettingService) UpdateSettings(updates *models.Setting) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates.ID = 0
		if err := s.db.Create(updates).Error; err != nil {
			return nil, err
		}
		return updates, nil
	}

	updates.ID = setting.ID
	updates.CreatedAt = setting.CreatedAt
	if err := s.db.Save(updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

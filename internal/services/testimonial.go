package services

import (
	"errors"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialService struct {
	db *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{db: db}
}

// GetPublicTestimonials returns active testimonials in display order
func (s *TestimonialService) GetPublicTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("featured DESC").
		Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

// TestimonialQuery carries the admin listing filters.
type TestimonialQuery struct {
	Search   string
	Featured *bool
	Page     int
	Limit    int
}

// GetTestimonials returns the admin listing
func (s *TestimonialService) GetTestimonials(q TestimonialQuery) ([]models.Testimonial, int64, error) {
	tx := s.db.Model(&models.Testimonial{})

	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR position LIKE ? OR company LIKE ?", like, like, like)
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 20)

	var testimonials []models.Testimonial
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&testimonials).Error
	if err != nil {
		return nil, 0, err
	}

	return testimonials, total, nil
}

// GetTestimonial returns one testimonial by ID
func (s *TestimonialService) GetTestimonial(id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &t, nil
}

// CreateTestimonial stores a new testimonial
func (s *TestimonialService) CreateTestimonial(t *models.Testimonial) (*models.Testimonial, error) {
	t.ID = 0
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTestimonial replaces the mutable fields of a testimonial
func (s *TestimonialService) UpdateTestimonial(id uint, updates *models.Testimonial) (*models.Testimonial, error) {
	t, err := s.GetTestimonial(id)
	if err != nil {
		return nil, err
	}

	updates.ID = t.ID
	updates.CreatedAt = t.CreatedAt
	if updates.Rating < 1 || updates.Rating > 5 {
		updates.Rating = 5
	}

	if err := s.db.Save(updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

// DeleteTestimonial removes a testimonial
func (s *TestimonialService) DeleteTestimonial(id uint) error {
	t, err := s.GetTestimonial(id)
	if err != nil {
		return err
	}
	return s.db.Delete(t).Error
}

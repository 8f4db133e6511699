package services

import (
	"errors"
	"strings"

	"uddaan/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrConsultationNotFound = errors.New("consultation not found")

type ConsultationService struct {
	db *gorm.DB
}

func NewConsultationService(db *gorm.DB) *ConsultationService {
	return &ConsultationService{db: db}
}

// BookConsultation stores a public booking and returns it with its booking ID
func (s *ConsultationService) BookConsultation(c *models.Consultation) (*models.Consultation, error) {
	c.ID = 0
	c.BookingID = "CON-" + strings.ToUpper(uuid.NewString()[:8])
	c.Status = models.ConsultationStatusPending
	if c.DurationMinutes == 0 {
		c.DurationMinutes = 60
	}

	if err := s.db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ConsultationQuery carries the admin listing filters.
type ConsultationQuery struct {
	Search string
	Status string
	Type   string
	Page   int
	Limit  int
}

// GetConsultations returns the admin listing, newest first
func (s *ConsultationService) GetConsultations(q ConsultationQuery) ([]models.Consultation, int64, error) {
	tx := s.db.Model(&models.Consultation{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Type != "" {
		tx = tx.Where("consultation_type = ?", q.Type)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("client_name LIKE ? OR client_email LIKE ? OR booking_id LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 20)

	var consultations []models.Consultation
	err := tx.Preload("AssignedTo").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&consultations).Error
	if err != nil {
		return nil, 0, err
	}

	return consultations, total, nil
}

// GetConsultation returns one booking by ID
func (s *ConsultationService) GetConsultation(id uint) (*models.Consultation, error) {
	var c models.Consultation
	if err := s.db.Preload("AssignedTo").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ConsultationUpdate carries the mutable admin fields.
type ConsultationUpdate struct {
	Status       string
	AdminNotes   string
	MeetingLink  string
	AssignedToID *uint
}

// UpdateConsultation applies scheduling and assignment changes
func (s *ConsultationService) UpdateConsultation(id uint, upd ConsultationUpdate) (*models.Consultation, error) {
	c, err := s.GetConsultation(id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if upd.Status != "" {
		changes["status"] = upd.Status
	}
	if upd.AdminNotes != "" {
		changes["admin_notes"] = upd.AdminNotes
	}
	if upd.MeetingLink != "" {
		changes["meeting_link"] = upd.MeetingLink
	}
	if upd.AssignedToID != nil {
		var assignee models.User
		if err := s.db.First(&assignee, *upd.AssignedToID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		changes["assigned_to_id"] = *upd.AssignedToID
	}

	if len(changes) > 0 {
		if err := s.db.Model(c).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.GetConsultation(id)
}

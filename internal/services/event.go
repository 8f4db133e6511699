package services

import (
	"errors"
	"time"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// EventQuery carries listing filters. Public listings force ActiveOnly.
type EventQuery struct {
	Search     string
	EventType  string
	Featured   bool
	Upcoming   bool
	ActiveOnly bool
	Page       int
	Limit      int
}

// GetEvents returns a filtered listing. Public callers see upcoming-first by
// start date; admin callers see newest-first.
func (s *EventService) GetEvents(q EventQuery) ([]models.Event, int64, error) {
	tx := s.db.Model(&models.Event{})

	if q.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if q.EventType != "" {
		tx = tx.Where("event_type = ?", q.EventType)
	}
	if q.Featured {
		tx = tx.Where("featured = ?", true)
	}
	if q.Upcoming {
		tx = tx.Where("start_date >= ?", time.Now())
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR description LIKE ? OR location LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 20)

	if q.ActiveOnly {
		tx = tx.Order("start_date ASC").Order("featured DESC")
	} else {
		tx = tx.Order("start_date DESC")
	}

	var events []models.Event
	err := tx.Offset((page - 1) * limit).Limit(limit).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// GetEvent returns one event by ID
func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	var e models.Event
	if err := s.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// CreateEvent stores a new event
func (s *EventService) CreateEvent(e *models.Event) (*models.Event, error) {
	e.ID = 0
	if e.EndDate.Before(e.StartDate) {
		e.EndDate = e.StartDate
	}
	if err := s.db.Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEvent replaces the mutable fields of an event
func (s *EventService) UpdateEvent(id uint, updates *models.Event) (*models.Event, error) {
	e, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	updates.ID = e.ID
	updates.Registered = e.Registered
	updates.CreatedAt = e.CreatedAt
	if updates.EndDate.Before(updates.StartDate) {
		updates.EndDate = updates.StartDate
	}

	if err := s.db.Save(updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

// DeleteEvent removes an event
func (s *EventService) DeleteEvent(id uint) error {
	e, err := s.GetEvent(id)
	if err != nil {
		return err
	}
	return s.db.Delete(e).Error
}

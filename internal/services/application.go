package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"uddaan/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// SubmitApplication stores a public submission and bumps the job's
// application counter atomically.
func (s *ApplicationService) SubmitApplication(app *models.Application) (*models.Application, error) {
	var job models.Job
	if err := s.db.First(&job, app.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	app.ID = 0
	app.ApplicationID = newApplicationID()
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	app.Status = models.ApplicationStatusNew
	if app.Priority == "" {
		app.Priority = "medium"
	}
	if app.Source == "" {
		app.Source = "website"
	}

	if err := s.db.Create(app).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&job).UpdateColumn("applications", gorm.Expr("applications + 1")).Error; err != nil {
		return nil, err
	}

	return app, nil
}

// ApplicationQuery carries the admin listing filters.
type ApplicationQuery struct {
	Search     string
	Status     string
	JobID      uint
	AssignedTo uint
	Page       int
	Limit      int
}

// GetApplications returns the admin listing, newest first
func (s *ApplicationService) GetApplications(q ApplicationQuery) ([]models.Application, int64, error) {
	tx := s.db.Model(&models.Application{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.JobID != 0 {
		tx = tx.Where("job_id = ?", q.JobID)
	}
	if q.AssignedTo != 0 {
		tx = tx.Where("assigned_to_id = ?", q.AssignedTo)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR application_id LIKE ?",
			like, like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 20)

	var apps []models.Application
	err := tx.Preload("Job").Preload("AssignedTo").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// GetApplication returns one application with job, assignee and notes
func (s *ApplicationService) GetApplication(id uint) (*models.Application, error) {
	var app models.Application
	err := s.db.Preload("Job").Preload("AssignedTo").
		Preload("Notes", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at DESC") }).
		Preload("Notes.AddedBy").
		First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// ApplicationUpdate carries the mutable admin fields.
type ApplicationUpdate struct {
	Status       string
	Priority     string
	AssignedToID *uint
}

// UpdateApplication applies status, priority and assignment changes
func (s *ApplicationService) UpdateApplication(id uint, upd ApplicationUpdate) (*models.Application, error) {
	app, err := s.GetApplication(id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if upd.Status != "" {
		changes["status"] = upd.Status
	}
	if upd.Priority != "" {
		changes["priority"] = upd.Priority
	}
	if upd.AssignedToID != nil {
		var assignee models.User
		if err := s.db.First(&assignee, *upd.AssignedToID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		now := time.Now()
		changes["assigned_to_id"] = *upd.AssignedToID
		changes["assigned_at"] = now
	}

	if len(changes) > 0 {
		if err := s.db.Model(app).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.GetApplication(id)
}

// AddNote attaches a recruiter note to an application
func (s *ApplicationService) AddNote(applicationID uint, content string, addedByID uint) (*models.ApplicationNote, error) {
	if _, err := s.GetApplication(applicationID); err != nil {
		return nil, err
	}

	note := &models.ApplicationNote{
		ApplicationID: applicationID,
		Content:       content,
		AddedByID:     addedByID,
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteApplication removes an application and its notes
func (s *ApplicationService) DeleteApplication(id uint) error {
	app, err := s.GetApplication(id)
	if err != nil {
		return err
	}

	if err := s.db.Where("application_id = ?", id).Delete(&models.ApplicationNote{}).Error; err != nil {
		return err
	}
	return s.db.Delete(app).Error
}

// newApplicationID yields e.g. APP-2026-3F2A91C4.
func newApplicationID() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("APP-%d-%s", time.Now().Year(), suffix)
}

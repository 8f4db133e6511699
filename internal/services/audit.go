package services

import (
	"time"

	"uddaan/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuditService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditService(db *gorm.DB, log *zap.Logger) *AuditService {
	return &AuditService{db: db, log: log}
}

// Record appends one audit entry. Entries are append-only: nothing in the
// system updates or deletes them. A persistence failure is reported on the
// operational log and returned, but callers on the request path must not let
// it reach the client.
func (s *AuditService) Record(userID *uint, action, model, modelID, changes, ipAddress, userAgent string) error {
	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Model:     model,
		ModelID:   modelID,
		Changes:   changes,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Severity:  models.SeverityFor(action),
	}

	if err := s.db.Create(entry).Error; err != nil {
		s.log.Error("audit entry not persisted",
			zap.String("action", action),
			zap.String("model", model),
			zap.String("model_id", modelID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// AuditQuery carries the admin listing filters.
type AuditQuery struct {
	Action    string
	Model     string
	UserID    uint
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// GetLogs returns a filtered, paginated audit trail, newest first
func (s *AuditService) GetLogs(q AuditQuery) ([]models.AuditLog, int64, error) {
	tx := s.db.Model(&models.AuditLog{})

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Model != "" {
		tx = tx.Where("model = ?", q.Model)
	}
	if q.UserID != 0 {
		tx = tx.Where("user_id = ?", q.UserID)
	}
	if q.StartDate != nil {
		tx = tx.Where("created_at >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		tx = tx.Where("created_at <= ?", *q.EndDate)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 50)

	var logs []models.AuditLog
	err := tx.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

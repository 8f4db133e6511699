package services

import (
	"time"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats is the aggregate snapshot shown on the admin landing page.
type DashboardStats struct {
	Jobs struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"jobs"`
	Applications struct {
		Total int64 `json:"total"`
		New   int64 `json:"new"`
	} `json:"applications"`
	Consultations struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"consultations"`
	Events struct {
		Total    int64 `json:"total"`
		Upcoming int64 `json:"upcoming"`
	} `json:"events"`
	Testimonials struct {
		Total int64 `json:"total"`
	} `json:"testimonials"`
	Users struct {
		Active int64 `json:"active"`
	} `json:"users"`
}

// Dashboard bundles the stats with recent activity.
type Dashboard struct {
	Stats              DashboardStats       `json:"stats"`
	RecentApplications []models.Application `json:"recent_applications"`
	TopJobs            []models.Job         `json:"top_jobs"`
	RecentAuditLogs    []models.AuditLog    `json:"recent_audit_logs"`
}

// GetDashboard runs the aggregation queries behind the admin landing page
func (s *DashboardService) GetDashboard() (*Dashboard, error) {
	var d Dashboard
	now := time.Now()

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&d.Stats.Jobs.Total, s.db.Model(&models.Job{})},
		{&d.Stats.Jobs.Active, s.db.Model(&models.Job{}).Where("is_active = ?", true)},
		{&d.Stats.Applications.Total, s.db.Model(&models.Application{})},
		{&d.Stats.Applications.New, s.db.Model(&models.Application{}).Where("status = ?", models.ApplicationStatusNew)},
		{&d.Stats.Consultations.Total, s.db.Model(&models.Consultation{})},
		{&d.Stats.Consultations.Pending, s.db.Model(&models.Consultation{}).Where("status = ?", models.ConsultationStatusPending)},
		{&d.Stats.Events.Total, s.db.Model(&models.Event{})},
		{&d.Stats.Events.Upcoming, s.db.Model(&models.Event{}).Where("start_date >= ? AND is_active = ?", now, true)},
		{&d.Stats.Testimonials.Total, s.db.Model(&models.Testimonial{})},
		{&d.Stats.Users.Active, s.db.Model(&models.User{}).Where("is_active = ?", true)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Preload("Job").
		Order("created_at DESC").Limit(10).
		Find(&d.RecentApplications).Error; err != nil {
		return nil, err
	}

	if err := s.db.Where("is_active = ?", true).
		Order("applications DESC").Order("views DESC").Limit(10).
		Find(&d.TopJobs).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").
		Order("created_at DESC").Limit(20).
		Find(&d.RecentAuditLogs).Error; err != nil {
		return nil, err
	}

	return &d, nil
}

// MonthlyCount is one month's bucket in the six-month trend.
type MonthlyCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// MonthlyStats groups creations per month for the last six months. The
// bucketing is done in Go to stay portable across sqlite and mysql.
func (s *DashboardService) MonthlyStats() (map[string][]MonthlyCount, error) {
	since := time.Now().AddDate(0, -6, 0)
	out := make(map[string][]MonthlyCount, 3)

	tables := []struct {
		name  string
		model interface{}
	}{
		{"jobs", &models.Job{}},
		{"applications", &models.Application{}},
		{"consultations", &models.Consultation{}},
	}

	for _, t := range tables {
		var stamps []time.Time
		err := s.db.Model(t.model).
			Where("created_at >= ?", since).
			Order("created_at").
			Pluck("created_at", &stamps).Error
		if err != nil {
			return nil, err
		}

		var buckets []MonthlyCount
		for _, ts := range stamps {
			y, m := ts.Year(), int(ts.Month())
			if n := len(buckets); n > 0 && buckets[n-1].Year == y && buckets[n-1].Month == m {
				buckets[n-1].Count++
				continue
			}
			buckets = append(buckets, MonthlyCount{Year: y, Month: m, Count: 1})
		}
		out[t.name] = buckets
	}

	return out, nil
}

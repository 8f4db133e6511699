package services

import (
	"errors"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// JobQuery carries listing filters. Public listings force ActiveOnly.
type JobQuery struct {
	Search     string
	Country    string
	City       string
	JobType    string
	Category   string
	Featured   bool
	ActiveOnly bool
	Status     string // admin filter: "active" or "inactive"
	SortBy     string
	SortDesc   bool
	Page       int
	Limit      int
}

var jobSortColumns = map[string]string{
	"created_at":   "created_at",
	"title":        "title",
	"country":      "country",
	"views":        "views",
	"applications": "applications",
	"salary_min":   "salary_min",
}

// GetJobs returns a filtered, paginated listing. Featured jobs sort first.
func (s *JobService) GetJobs(q JobQuery) ([]models.Job, int64, error) {
	tx := s.db.Model(&models.Job{})

	if q.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	} else if q.Status != "" {
		tx = tx.Where("is_active = ?", q.Status == "active")
	}
	if q.Country != "" {
		tx = tx.Where("country LIKE ?", "%"+q.Country+"%")
	}
	if q.City != "" {
		tx = tx.Where("city LIKE ?", "%"+q.City+"%")
	}
	if q.JobType != "" {
		tx = tx.Where("job_type = ?", q.JobType)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Featured {
		tx = tx.Where("featured = ?", true)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR company LIKE ? OR description LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortCol, ok := jobSortColumns[q.SortBy]
	if !ok {
		sortCol = "created_at"
		q.SortDesc = true
	}
	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	page, limit := normalizePage(q.Page, q.Limit, 12)

	var jobs []models.Job
	err := tx.Order("featured DESC").
		Order(sortCol + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// GetJob returns one job by ID
func (s *JobService) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// GetActiveJob returns one active job and counts the view. The increment is
// an atomic column update; concurrent views never lose counts.
func (s *JobService) GetActiveJob(id uint) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrJobNotFound
	}

	if err := s.db.Model(job).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	job.Views++
	return job, nil
}

// CreateJob stores a new listing attributed to the creating user
func (s *JobService) CreateJob(job *models.Job, createdByID uint) (*models.Job, error) {
	job.ID = 0
	job.Views = 0
	job.Applications = 0
	job.CreatedByID = &createdByID
	if job.Currency == "" {
		job.Currency = "USD"
	}
	// Keep the salary range ordered
	if job.SalaryMin > job.SalaryMax && job.SalaryMax != 0 {
		job.SalaryMin, job.SalaryMax = job.SalaryMax, job.SalaryMin
	}

	if err := s.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob applies the supplied fields onto an existing listing
func (s *JobService) UpdateJob(id uint, updates *models.Job) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	updates.ID = job.ID
	updates.Views = job.Views
	updates.Applications = job.Applications
	updates.CreatedByID = job.CreatedByID
	updates.CreatedAt = job.CreatedAt
	if updates.SalaryMin > updates.SalaryMax && updates.SalaryMax != 0 {
		updates.SalaryMin, updates.SalaryMax = updates.SalaryMax, updates.SalaryMin
	}

	if err := s.db.Session(&gorm.Session{FullSaveAssociations: false}).Save(updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

// DeleteJob removes a listing
func (s *JobService) DeleteJob(id uint) error {
	job, err := s.GetJob(id)
	if err != nil {
		return err
	}
	return s.db.Delete(job).Error
}

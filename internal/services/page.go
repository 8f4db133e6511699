package services

import (
	"errors"
	"regexp"
	"strings"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrSlugTaken    = errors.New("slug already in use")
)

type PageService struct {
	db *gorm.DB
}

func NewPageService(db *gorm.DB) *PageService {
	return &PageService{db: db}
}

// GetPublishedPage returns a published page by slug
func (s *PageService) GetPublishedPage(slug string) (*models.Page, error) {
	var page models.Page
	err := s.db.Where("slug = ? AND status = ?", slug, models.PageStatusPublished).
		Preload("Author").First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// PageQuery carries the admin listing filters.
type PageQuery struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// GetPages returns the admin listing
func (s *PageService) GetPages(q PageQuery) ([]models.Page, int64, error) {
	tx := s.db.Model(&models.Page{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("title LIKE ? OR slug LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 20)

	var pages []models.Page
	err := tx.Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pages).Error
	if err != nil {
		return nil, 0, err
	}

	return pages, total, nil
}

// GetPage returns one page by ID
func (s *PageService) GetPage(id uint) (*models.Page, error) {
	var page models.Page
	if err := s.db.Preload("Author").First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// CreatePage stores a new page, deriving the slug from the title when absent
func (s *PageService) CreatePage(page *models.Page, authorID uint) (*models.Page, error) {
	page.ID = 0
	page.AuthorID = &authorID
	if page.Slug == "" {
		page.Slug = Slugify(page.Title)
	}
	if page.Status == "" {
		page.Status = models.PageStatusDraft
	}

	var existing models.Page
	if err := s.db.Where("slug = ?", page.Slug).First(&existing).Error; err == nil {
		return nil, ErrSlugTaken
	}

	if err := s.db.Create(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// UpdatePage replaces the mutable fields of a page
func (s *PageService) UpdatePage(id uint, updates *models.Page) (*models.Page, error) {
	page, err := s.GetPage(id)
	if err != nil {
		return nil, err
	}

	if updates.Slug != "" && updates.Slug != page.Slug {
		var existing models.Page
		if err := s.db.Where("slug = ? AND id != ?", updates.Slug, id).First(&existing).Error; err == nil {
			return nil, ErrSlugTaken
		}
		page.Slug = updates.Slug
	}

	if updates.Title != "" {
		page.Title = updates.Title
	}
	if updates.Content != "" {
		page.Content = updates.Content
	}
	if updates.Status != "" {
		page.Status = updates.Status
	}
	page.SEOTitle = updates.SEOTitle
	page.SEODescription = updates.SEODescription

	if err := s.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// DeletePage removes a page
func (s *PageService) DeletePage(id uint) error {
	page, err := s.GetPage(id)
	if err != nil {
		return err
	}
	return s.db.Delete(page).Error
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and collapses runs of non-alphanumerics
// into single hyphens.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"uddaan/internal/config"
	"uddaan/internal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMediaNotFound   = errors.New("media not found")
	ErrInvalidFileType = errors.New("invalid file type: only images, PDF and DOC files are allowed")
)

// allowedMimeTypes gates uploads by sniffed content, not by extension.
// Matching is on the exact detected type.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type MediaService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewMediaService(db *gorm.DB, cfg *config.Config) *MediaService {
	return &MediaService{db: db, cfg: cfg}
}

// NewStoredFilename generates the on-disk name for an upload, keeping the
// original extension.
func (s *MediaService) NewStoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}

// UploadDir returns the configured upload directory.
func (s *MediaService) UploadDir() string {
	return s.cfg.Uploads.Path
}

// RegisterUpload sniffs the saved file's content, validates its type and
// records the metadata row. On a rejected type the file is removed again.
func (s *MediaService) RegisterUpload(storedName, originalName, altText string, tags []string, isPublic bool, uploadedByID uint) (*models.Media, error) {
	path := filepath.Join(s.cfg.Uploads.Path, storedName)

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	if !allowedMimeTypes[mtype.String()] {
		os.Remove(path)
		return nil, ErrInvalidFileType
	}

	if altText == "" {
		altText = originalName
	}

	media := &models.Media{
		Filename:     storedName,
		OriginalName: originalName,
		MimeType:     mtype.String(),
		Size:         info.Size(),
		Path:         path,
		AltText:      altText,
		Tags:         tags,
		IsPublic:     isPublic,
		UploadedByID: &uploadedByID,
	}

	if err := s.db.Create(media).Error; err != nil {
		os.Remove(path)
		return nil, err
	}

	return media, nil
}

// MediaQuery carries the admin listing filters.
type MediaQuery struct {
	MimeType string
	Tag      string
	Page     int
	Limit    int
}

// GetMedia returns the admin listing, newest first
func (s *MediaService) GetMedia(q MediaQuery) ([]models.Media, int64, error) {
	tx := s.db.Model(&models.Media{})

	if q.MimeType != "" {
		tx = tx.Where("mime_type LIKE ?", "%"+q.MimeType+"%")
	}
	if q.Tag != "" {
		tx = tx.Where("tags LIKE ?", "%\""+q.Tag+"\"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 20)

	var media []models.Media
	err := tx.Preload("UploadedBy").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&media).Error
	if err != nil {
		return nil, 0, err
	}

	return media, total, nil
}

// GetMediaItem returns one media row by ID
func (s *MediaService) GetMediaItem(id uint) (*models.Media, error) {
	var media models.Media
	if err := s.db.First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

// DeleteMedia removes the metadata row and the file on disk. A missing file
// is not an error; the row is authoritative.
func (s *MediaService) DeleteMedia(id uint) error {
	media, err := s.GetMediaItem(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(media).Error; err != nil {
		return err
	}

	if err := os.Remove(media.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

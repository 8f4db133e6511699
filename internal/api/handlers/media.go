package handlers

import (
	"errors"
	"path/filepath"
	"strconv"

	"uddaan/internal/api/middleware"
	"uddaan/internal/config"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService *services.MediaService
	cfg          *config.Config
}

func NewMediaHandler(mediaService *services.MediaService, cfg *config.Config) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, cfg: cfg}
}

// Upload accepts a multipart batch under the "files" field, saves each file
// under a generated name and registers the metadata rows. Oversized or
// mistyped files are reported individually without failing the batch.
func (h *MediaHandler) Upload(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "No files provided"})
		return
	}
	if len(files) > h.cfg.Uploads.MaxPerBatch {
		c.JSON(400, gin.H{"success": false, "message": "Too many files in one batch"})
		return
	}

	altText := c.PostForm("alt_text")
	isPublic := c.DefaultPostForm("is_public", "true") == "true"
	var tags []string
	if v := form.Value["tags"]; len(v) > 0 {
		tags = v
	}

	maxSize := int64(h.cfg.Uploads.MaxSizeMB) << 20

	uploaded := make([]interface{}, 0, len(files))
	failed := make([]gin.H, 0)

	for _, file := range files {
		if file.Size > maxSize {
			failed = append(failed, gin.H{"file": file.Filename, "reason": "file too large"})
			continue
		}

		storedName := h.mediaService.NewStoredFilename(file.Filename)
		dest := filepath.Join(h.mediaService.UploadDir(), storedName)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			failed = append(failed, gin.H{"file": file.Filename, "reason": "failed to save file"})
			continue
		}

		media, err := h.mediaService.RegisterUpload(storedName, file.Filename, altText, tags, isPublic, user.ID)
		if err != nil {
			reason := "failed to register file"
			if errors.Is(err, services.ErrInvalidFileType) {
				reason = err.Error()
			}
			failed = append(failed, gin.H{"file": file.Filename, "reason": reason})
			continue
		}

		uploaded = append(uploaded, media)
	}

	if len(uploaded) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "No files were uploaded", "failed": failed})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Files uploaded successfully",
		"media":   uploaded,
		"failed":  failed,
	})
}

// GetMedia lists uploaded files for the admin panel
func (h *MediaHandler) GetMedia(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	q := services.MediaQuery{
		MimeType: c.Query("mime_type"),
		Tag:      c.Query("tag"),
		Page:     page,
		Limit:    limit,
	}

	media, total, err := h.mediaService.GetMedia(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get media"})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"media":      media,
		"pagination": paginate(q.Page, q.Limit, total),
	})
}

// DeleteMedia removes a file and its metadata
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid media ID"})
		return
	}

	if err := h.mediaService.DeleteMedia(uint(id)); err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Media not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete media"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Media deleted successfully"})
}

package handlers

import (
	"errors"
	"strconv"

	"uddaan/internal/api/middleware"
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageService *services.PageService
}

func NewPageHandler(pageService *services.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// GetPublishedPage serves a published page to visitors by slug
func (h *PageHandler) GetPublishedPage(c *gin.Context) {
	page, err := h.pageService.GetPublishedPage(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Page not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to get page"})
		return
	}

	c.JSON(200, gin.H{"success": true, "page": page})
}

// GetPages lists pages for the admin panel
func (h *PageHandler) GetPages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	q := services.PageQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	pages, total, err := h.pageService.GetPages(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get pages"})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"pages":      pages,
		"pagination": paginate(q.Page, q.Limit, total),
	})
}

// GetPage returns one page regardless of status
func (h *PageHandler) GetPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid page ID"})
		return
	}

	page, err := h.pageService.GetPage(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Page not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to get page"})
		return
	}

	c.JSON(200, gin.H{"success": true, "page": page})
}

type PageRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug"`
	Content        string `json:"content"`
	Status         string `json:"status"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

// CreatePage stores a new page attributed to the current user
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	page := &models.Page{
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Status:         req.Status,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}

	created, err := h.pageService.CreatePage(page, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Slug already in use"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create page"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Page created successfully", "page": created})
}

// UpdatePage replaces a page's editable fields
func (h *PageHandler) UpdatePage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid page ID"})
		return
	}

	var updates models.Page
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	page, err := h.pageService.UpdatePage(uint(id), &updates)
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Page not found"})
			return
		}
		if errors.Is(err, services.ErrSlugTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Slug already in use"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update page"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Page updated successfully", "page": page})
}

// DeletePage removes a page
func (h *PageHandler) DeletePage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid page ID"})
		return
	}

	if err := h.pageService.DeletePage(uint(id)); err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Page not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete page"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Page deleted successfully"})
}

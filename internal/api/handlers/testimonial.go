package handlers

import (
	"errors"
	"strconv"

	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

func NewTestimonialHandler(testimonialService *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// GetPublicTestimonials lists active testimonials for visitors
func (h *TestimonialHandler) GetPublicTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetPublicTestimonials()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get testimonials"})
		return
	}

	c.JSON(200, gin.H{"success": true, "testimonials": testimonials})
}

// GetTestimonials lists testimonials for the admin panel
func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	q := services.TestimonialQuery{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		q.Featured = &featured
	}

	testimonials, total, err := h.testimonialService.GetTestimonials(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get testimonials"})
		return
	}

	c.JSON(200, gin.H{
		"success":      true,
		"testimonials": testimonials,
		"pagination":   paginate(q.Page, q.Limit, total),
	})
}

// CreateTestimonial stores a new testimonial
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	created, err := h.testimonialService.CreateTestimonial(&t)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create testimonial"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Testimonial created successfully", "testimonial": created})
}

// UpdateTestimonial replaces a testimonial's fields
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid testimonial ID"})
		return
	}

	var updates models.Testimonial
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	t, err := h.testimonialService.UpdateTestimonial(uint(id), &updates)
	if err != nil {
		if errors.Is(err, services.ErrTestimonialNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Testimonial not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update testimonial"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Testimonial updated successfully", "testimonial": t})
}

// DeleteTestimonial removes a testimonial
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid testimonial ID"})
		return
	}

	if err := h.testimonialService.DeleteTestimonial(uint(id)); err != nil {
		if errors.Is(err, services.ErrTestimonialNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Testimonial not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete testimonial"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Testimonial deleted successfully"})
}

package handlers

import (
	"errors"
	"strconv"

	"uddaan/internal/api/middleware"
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func jobQueryFromContext(c *gin.Context) services.JobQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	return services.JobQuery{
		Search:   c.Query("search"),
		Country:  c.Query("country"),
		City:     c.Query("city"),
		JobType:  c.Query("job_type"),
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
		Status:   c.Query("status"),
		SortBy:   c.Query("sort_by"),
		SortDesc: c.DefaultQuery("sort_order", "desc") == "desc",
		Page:     page,
		Limit:    limit,
	}
}

// GetPublicJobs lists active jobs for visitors
func (h *JobHandler) GetPublicJobs(c *gin.Context) {
	q := jobQueryFromContext(c)
	q.ActiveOnly = true
	q.Status = ""

	jobs, total, err := h.jobService.GetJobs(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get jobs"})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"jobs":       jobs,
		"pagination": paginate(q.Page, q.Limit, total),
	})
}

// GetPublicJob returns one active job and records the view
func (h *JobHandler) GetPublicJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid job ID"})
		return
	}

	job, err := h.jobService.GetActiveJob(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Job not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to get job"})
		return
	}

	c.JSON(200, gin.H{"success": true, "job": job})
}

// GetJobs lists jobs for the admin panel, inactive ones included
func (h *JobHandler) GetJobs(c *gin.Context) {
	q := jobQueryFromContext(c)

	jobs, total, err := h.jobService.GetJobs(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get jobs"})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"jobs":       jobs,
		"pagination": paginate(q.Page, q.Limit, total),
	})
}

// GetJob returns one job regardless of active state
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid job ID"})
		return
	}

	job, err := h.jobService.GetJob(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Job not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to get job"})
		return
	}

	c.JSON(200, gin.H{"success": true, "job": job})
}

// CreateJob stores a new listing
func (h *JobHandler) CreateJob(c *gin.Context) {
	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	created, err := h.jobService.CreateJob(&job, user.ID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create job"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Job created successfully", "job": created})
}

// UpdateJob replaces a listing's editable fields
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid job ID"})
		return
	}

	var updates models.Job
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	job, err := h.jobService.UpdateJob(uint(id), &updates)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Job not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update job"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Job updated successfully", "job": job})
}

// DeleteJob removes a listing
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid job ID"})
		return
	}

	if err := h.jobService.DeleteJob(uint(id)); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Job not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete job"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Job deleted successfully"})
}

package handlers

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"uddaan/internal/api/middleware"
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	mediaService       *services.MediaService
}

func NewApplicationHandler(applicationService *services.ApplicationService, mediaService *services.MediaService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, mediaService: mediaService}
}

type SubmitApplicationRequest struct {
	JobID           uint     `json:"job_id" binding:"required"`
	FirstName       string   `json:"first_name" binding:"required"`
	LastName        string   `json:"last_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"required"`
	Nationality     string   `json:"nationality"`
	CurrentJobTitle string   `json:"current_job_title"`
	CurrentCompany  string   `json:"current_company"`
	ExperienceYears int      `json:"experience_years"`
	NoticePeriod    string   `json:"notice_period"`
	Skills          []string `json:"skills"`
	CoverLetter     string   `json:"cover_letter"`
	ResumeFile      string   `json:"resume_file"`
}

// SubmitApplication accepts a public job application. Multipart submissions
// may attach a resume under the "resume" field; JSON submissions reference an
// already uploaded file instead.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		jobID, err := strconv.ParseUint(c.PostForm("job_id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid job ID"})
			return
		}
		req.JobID = uint(jobID)
		req.FirstName = c.PostForm("first_name")
		req.LastName = c.PostForm("last_name")
		req.Email = c.PostForm("email")
		req.Phone = c.PostForm("phone")
		req.Nationality = c.PostForm("nationality")
		req.CurrentJobTitle = c.PostForm("current_job_title")
		req.CurrentCompany = c.PostForm("current_company")
		req.ExperienceYears, _ = strconv.Atoi(c.PostForm("experience_years"))
		req.NoticePeriod = c.PostForm("notice_period")
		req.CoverLetter = c.PostForm("cover_letter")
		if v := c.PostForm("skills"); v != "" {
			req.Skills = strings.Split(v, ",")
		}
		if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" {
			c.JSON(400, gin.H{"success": false, "message": "Missing required fields"})
			return
		}

		if file, err := c.FormFile("resume"); err == nil {
			storedName := h.mediaService.NewStoredFilename(file.Filename)
			dest := filepath.Join(h.mediaService.UploadDir(), storedName)
			if err := c.SaveUploadedFile(file, dest); err != nil {
				c.JSON(500, gin.H{"success": false, "message": "Failed to save resume"})
				return
			}
			req.ResumeFile = storedName
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	app := &models.Application{
		JobID:           req.JobID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Nationality:     req.Nationality,
		CurrentJobTitle: req.CurrentJobTitle,
		CurrentCompany:  req.CurrentCompany,
		ExperienceYears: req.ExperienceYears,
		NoticePeriod:    req.NoticePeriod,
		Skills:          req.Skills,
		CoverLetter:     req.CoverLetter,
		ResumeFile:      req.ResumeFile,
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	}

	created, err := h.applicationService.SubmitApplication(app)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Job not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to submit application"})
		return
	}

	c.JSON(201, gin.H{
		"success":        true,
		"message":        "Application submitted successfully",
		"application_id": created.ApplicationID,
	})
}

// GetApplications lists applications for the admin panel
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	jobID, _ := strconv.ParseUint(c.Query("job_id"), 10, 32)
	assignedTo, _ := strconv.ParseUint(c.Query("assigned_to"), 10, 32)

	q := services.ApplicationQuery{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		JobID:      uint(jobID),
		AssignedTo: uint(assignedTo),
		Page:       page,
		Limit:      limit,
	}

	apps, total, err := h.applicationService.GetApplications(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get applications"})
		return
	}

	c.JSON(200, gin.H{
		"success":      true,
		"applications": apps,
		"pagination":   paginate(q.Page, q.Limit, total),
	})
}

// GetApplication returns one application with its notes
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid application ID"})
		return
	}

	app, err := h.applicationService.GetApplication(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Application not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to get application"})
		return
	}

	c.JSON(200, gin.H{"success": true, "application": app})
}

type UpdateApplicationRequest struct {
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	AssignedToID *uint  `json:"assigned_to_id"`
}

// UpdateApplication changes status, priority or assignment
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid application ID"})
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	app, err := h.applicationService.UpdateApplication(uint(id), services.ApplicationUpdate{
		Status:       req.Status,
		Priority:     req.Priority,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Application not found"})
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(400, gin.H{"success": false, "message": "Assignee not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update application"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Application updated successfully", "application": app})
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddNote attaches a recruiter note
func (h *ApplicationHandler) AddNote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid application ID"})
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	note, err := h.applicationService.AddNote(uint(id), req.Content, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Application not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to add note"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Note added successfully", "note": note})
}

// DeleteApplication removes an application and its notes
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid application ID"})
		return
	}

	if err := h.applicationService.DeleteApplication(uint(id)); err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Application not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete application"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Application deleted successfully"})
}

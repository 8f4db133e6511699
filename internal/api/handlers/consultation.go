package handlers

import (
	"errors"
	"strconv"
	"time"

	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	consultationService *services.ConsultationService
}

func NewConsultationHandler(consultationService *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

type BookConsultationRequest struct {
	ClientName       string `json:"client_name" binding:"required"`
	ClientEmail      string `json:"client_email" binding:"required,email"`
	ClientPhone      string `json:"client_phone" binding:"required"`
	ConsultationType string `json:"consultation_type" binding:"required"`
	PreferredDate    string `json:"preferred_date" binding:"required"` // YYYY-MM-DD
	PreferredTime    string `json:"preferred_time" binding:"required"`
	Message          string `json:"message"`
	DurationMinutes  int    `json:"duration_minutes"`
}

// BookConsultation accepts a public booking request
func (h *ConsultationHandler) BookConsultation(c *gin.Context) {
	var req BookConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid preferred date, expected YYYY-MM-DD"})
		return
	}

	booking := &models.Consultation{
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		ClientPhone:      req.ClientPhone,
		ConsultationType: req.ConsultationType,
		PreferredDate:    date,
		PreferredTime:    req.PreferredTime,
		Message:          req.Message,
		DurationMinutes:  req.DurationMinutes,
	}

	created, err := h.consultationService.BookConsultation(booking)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to book consultation"})
		return
	}

	c.JSON(201, gin.H{
		"success":    true,
		"message":    "Consultation booked successfully",
		"booking_id": created.BookingID,
	})
}

// GetConsultations lists bookings for the admin panel
func (h *ConsultationHandler) GetConsultations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	q := services.ConsultationQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Page:   page,
		Limit:  limit,
	}

	consultations, total, err := h.consultationService.GetConsultations(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get consultations"})
		return
	}

	c.JSON(200, gin.H{
		"success":       true,
		"consultations": consultations,
		"pagination":    paginate(q.Page, q.Limit, total),
	})
}

// GetConsultation returns one booking
func (h *ConsultationHandler) GetConsultation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid consultation ID"})
		return
	}

	consultation, err := h.consultationService.GetConsultation(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Consultation not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to get consultation"})
		return
	}

	c.JSON(200, gin.H{"success": true, "consultation": consultation})
}

type UpdateConsultationRequest struct {
	Status       string `json:"status"`
	AdminNotes   string `json:"admin_notes"`
	MeetingLink  string `json:"meeting_link"`
	AssignedToID *uint  `json:"assigned_to_id"`
}

// UpdateConsultation applies scheduling changes
func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid consultation ID"})
		return
	}

	var req UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	consultation, err := h.consultationService.UpdateConsultation(uint(id), services.ConsultationUpdate{
		Status:       req.Status,
		AdminNotes:   req.AdminNotes,
		MeetingLink:  req.MeetingLink,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Consultation not found"})
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(400, gin.H{"success": false, "message": "Assignee not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update consultation"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Consultation updated successfully", "consultation": consultation})
}

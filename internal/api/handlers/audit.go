package handlers

import (
	"strconv"
	"time"

	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// GetLogs lists the audit trail with optional filters
func (h *AuditHandler) GetLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)

	q := services.AuditQuery{
		Action: c.Query("action"),
		Model:  c.Query("model"),
		UserID: uint(userID),
		Page:   page,
		Limit:  limit,
	}

	if v := c.Query("start_date"); v != "" {
		start, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid start date, expected YYYY-MM-DD"})
			return
		}
		q.StartDate = &start
	}
	if v := c.Query("end_date"); v != "" {
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid end date, expected YYYY-MM-DD"})
			return
		}
		// Include the whole end day
		end = end.Add(24*time.Hour - time.Nanosecond)
		q.EndDate = &end
	}

	logs, total, err := h.auditService.GetLogs(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get audit logs"})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"logs":       logs,
		"pagination": paginate(q.Page, q.Limit, total),
	})
}

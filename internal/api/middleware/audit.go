package middleware

import (
	"bytes"
	"io"

	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

// maxAuditSnapshot bounds how much of a request payload is copied into the
// audit trail.
const maxAuditSnapshot = 64 * 1024

// Audit records one entry after the wrapped handler succeeds. The request
// body is snapshotted up front, the handler runs, and only when the response
// status is below 400 is the entry appended. The write happens on its own
// goroutine, so a slow or failing audit write never touches the response
// already sent. Failed handler invocations produce no entry.
func Audit(auditService *services.AuditService, action, model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := snapshotBody(c)

		c.Next()

		// Success is a status-code threshold, matching the observed
		// policy even where redirect/info statuses slip through.
		if c.Writer.Status() >= 400 {
			return
		}

		var userID *uint
		if user := CurrentUser(c); user != nil {
			id := user.ID
			userID = &id
		}

		modelID := c.Param("id")
		if modelID == "" {
			modelID = models.AuditModelBulk
		}

		ip := c.ClientIP()
		userAgent := c.GetHeader("User-Agent")

		// Fire-and-forget: errors are logged inside Record and never
		// retried.
		go func() {
			_ = auditService.Record(userID, action, model, modelID, snapshot, ip, userAgent)
		}()
	}
}

// snapshotBody reads the request payload for the audit trail and restores it
// for the handler. Multipart bodies are skipped; file contents do not belong
// in the trail.
func snapshotBody(c *gin.Context) string {
	if c.Request.Body == nil || c.ContentType() == "multipart/form-data" {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAuditSnapshot))
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), c.Request.Body))

	return string(data)
}

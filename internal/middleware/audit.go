package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cosyll/cosyll-web/internal/models"
)

const auditResourceIDKey = "audit_resource_id"

// AuditRecorder stores audit entries.
type AuditRecorder interface {
	Record(ctx context.Context, entry *models.AuditLog)
}

// SetAuditResourceID names the affected record when it is only known after the handler ran,
// such as the id of a freshly created syllabus.
func SetAuditResourceID(c *gin.Context, id string) {
	c.Set(auditResourceIDKey, id)
}

// Audit records an audit log entry after every successful request. idParam names the route
// parameter holding the affected record id; it may be empty.
func Audit(recorder AuditRecorder, action, resource, idParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if recorder == nil || c.Writer.Status() >= 400 {
			return
		}

		entry := &models.AuditLog{
			Action:    action,
			Resource:  resource,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		}
		if viewer := Viewer(c); viewer != nil {
			userID := viewer.UserID
			entry.UserID = &userID
		}
		if id := resourceID(c, idParam); id != "" {
			entry.ResourceID = &id
		}

		recorder.Record(c.Request.Context(), entry)
	}
}

func resourceID(c *gin.Context, idParam string) string {
	if v, ok := c.Get(auditResourceIDKey); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	if idParam == "" {
		return ""
	}
	return c.Param(idParam)
}

// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/burim/garant-backend/internal/models"
)

// RequestLogger logs every request with a generated request id.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		entry := logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration.Milliseconds(),
			"ip":         c.ClientIP(),
		})
		if userID, exists := c.Get("user_id"); exists {
			entry = entry.WithField("user_id", userID)
		}
		entry.Info("Request processed")
	}
}

// AuditLogMiddleware records mutating requests (deal transitions, catalog
// changes) to the audit_logs table.
func AuditLogMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		var userID *uint
		if raw, exists := c.Get("user_id"); exists {
			if id, ok := raw.(uint); ok {
				userID = &id
			}
		}

		auditLog := &models.AuditLog{
			UserID:       userID,
			Action:       c.Request.Method + " " + c.Request.URL.Path,
			ResourceType: extractResourceType(c.Request.URL.Path),
			ResourceID:   extractResourceID(c.Request.URL.Path),
			NewValues:    auditRequestData(c.Request.URL.Path, requestBody),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}

		go func() {
			if err := db.Create(auditLog).Error; err != nil {
				logrus.WithError(err).Error("Failed to create audit log")
			}
		}()
	}
}

var auditRedactedFields = []string{"password", "refresh_token"}

// auditRequestData sanitizes a request body for the audit trail. Auth bodies
// are all credentials, so they are never recorded; elsewhere the known secret
// fields are stripped.
func auditRequestData(path string, body []byte) models.JSONB {
	if strings.HasPrefix(path, "/v1/auth/") {
		return nil
	}

	var data map[string]interface{}
	if len(body) == 0 || json.Unmarshal(body, &data) != nil {
		return nil
	}

	for _, field := range auditRedactedFields {
		delete(data, field)
	}
	return models.JSONB(data)
}

func extractResourceType(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "v1" {
		return parts[1]
	}
	if len(parts) >= 1 {
		return parts[0]
	}
	return "unknown"
}

func extractResourceID(path string) *uint {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for _, part := range parts {
		if id, err := strconv.ParseUint(part, 10, 64); err == nil {
			resourceID := uint(id)
			return &resourceID
		}
	}
	return nil
}

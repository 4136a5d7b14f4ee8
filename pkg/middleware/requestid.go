package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the caller-assigned correlation id.
	HeaderRequestID = "X-Request-ID"

	// ContextRequestID is the gin context key the id is stored under.
	ContextRequestID = "request_id"
)

// RequestID propagates the caller's X-Request-ID, assigning a fresh one
// when the header is absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

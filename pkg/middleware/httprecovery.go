package middleware

import (
	"net/http"

	"github.com/corpscope/corpscope/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPRecovery converts panics anywhere in the handler chain into the
// standard failure envelope instead of dropping the connection.
func HTTPRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Msgf("[recovery] panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewFailureResponse("Internal server error"))
			}
		}()
		c.Next()
	}
}

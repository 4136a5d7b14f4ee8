package route

import (
	"net/http"
	"sync"

	"github.com/corpscope/corpscope/pkg/httpframework"
	"github.com/gin-gonic/gin"
)

var initHealthRouterOnce sync.Once

// Init registers the liveness routes. /health/self is the probe path
// used by deployment tooling.
func Init() {
	initHealthRouterOnce.Do(func() {
		health := httpframework.Instance().Group("/health")
		{
			health.GET("", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "true"})
			})
			health.GET("/self", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "true"})
			})
		}
	})
}

package route

import (
	"sync"

	"github.com/corpscope/corpscope/internal/sandbox/controller"
	"github.com/corpscope/corpscope/pkg/httpframework"
)

var initSandboxRouterOnce sync.Once

func Init() {
	initSandboxRouterOnce.Do(func() {
		api := httpframework.Instance().Group("/api")
		{
			sandbox := api.Group("/sandbox")
			{
				companies := sandbox.Group("/companies")
				{
					companies.GET("", controller.NewSandboxController().List)
					companies.POST("", controller.NewSandboxController().Create)
					companies.POST("/generate", controller.NewSandboxController().Generate)
					companies.GET("/:id", controller.NewSandboxController().Get)
					companies.PUT("/:id", controller.NewSandboxController().Update)
					companies.DELETE("/:id", controller.NewSandboxController().Delete)
				}
			}
		}
	})
}

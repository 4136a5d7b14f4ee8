package route

import (
	"sync"

	"github.com/corpscope/corpscope/internal/officers/controller"
	"github.com/corpscope/corpscope/pkg/httpframework"
)

var initOfficersRouterOnce sync.Once

// Init registers the officer routes. The /api/person group is an alias
// kept for callers of the legacy paths.
func Init() {
	initOfficersRouterOnce.Do(func() {
		api := httpframework.Instance().Group("/api")
		{
			officers := api.Group("/officers")
			{
				officers.GET("/search", controller.NewOfficersController().Search)
				officers.GET("/:officer_id", controller.NewOfficersController().Get)
			}
			person := api.Group("/person")
			{
				person.GET("/search", controller.NewOfficersController().Search)
				person.GET("/:officer_id", controller.NewOfficersController().Get)
			}
		}
	})
}

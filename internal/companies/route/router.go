package route

import (
	"sync"

	"github.com/corpscope/corpscope/internal/companies/controller"
	"github.com/corpscope/corpscope/pkg/httpframework"
)

var initCompaniesRouterOnce sync.Once

func Init() {
	initCompaniesRouterOnce.Do(func() {
		api := httpframework.Instance().Group("/api")
		{
			companies := api.Group("/companies")
			{
				companies.GET("/search", controller.NewCompaniesController().Search)
				companies.GET("/:jurisdiction_code/:company_number", controller.NewCompaniesController().Get)
			}
		}
	})
}

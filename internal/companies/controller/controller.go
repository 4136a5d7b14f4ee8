package controller

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/corpscope/corpscope/internal/companies/handler"
	"github.com/corpscope/corpscope/pkg/api"
	"github.com/corpscope/corpscope/pkg/opencorporates"
	"github.com/gin-gonic/gin"
)

const missingQueryMessage = "Missing required parameter: q (query) is required"

type Companies interface {
	Search(ctx *gin.Context)
	Get(ctx *gin.Context)
}

var (
	companiesController Companies
	once                sync.Once
)

type V1 struct {
	Companies handler.Companies
	ProdMode  bool
}

func NewCompaniesController() Companies {
	if companiesController == nil {
		once.Do(func() {
			companiesController = &V1{
				Companies: handler.NewCompaniesHandler(opencorporates.GetClient()),
				ProdMode:  isProdEnv(),
			}
		})
	}
	return companiesController
}

func (c *V1) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if strings.TrimSpace(query) == "" {
		ctx.JSON(api.NewBadRequestError(missingQueryMessage).StatusCode, api.NewFailureResponse(missingQueryMessage))
		return
	}

	response, err := c.Companies.Search(query, queryParams(ctx))
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *V1) Get(ctx *gin.Context) {
	jurisdictionCode := strings.TrimSpace(ctx.Param("jurisdiction_code"))
	companyNumber := strings.TrimSpace(ctx.Param("company_number"))
	if jurisdictionCode == "" || companyNumber == "" {
		message := "Missing required parameter: jurisdiction_code and company_number are required"
		ctx.JSON(api.NewBadRequestError(message).StatusCode, api.NewFailureResponse(message))
		return
	}

	response, err := c.Companies.Get(jurisdictionCode, companyNumber, queryParams(ctx))
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// respondFailure maps lookup errors onto the failure envelope. Upstream
// non-2xx answers keep their status and body; everything else is a 500
// with detail echoed only outside production.
func (c *V1) respondFailure(ctx *gin.Context, err error) {
	var apiErr *opencorporates.APIError
	if errors.As(err, &apiErr) {
		response := api.NewFailureResponse("Error from API")
		response.Data = apiErr.Body
		ctx.JSON(apiErr.StatusCode, response)
		return
	}

	if errors.Is(err, opencorporates.ErrTokenNotConfigured) {
		ctx.JSON(http.StatusInternalServerError, api.NewFailureResponse(err.Error()))
		return
	}

	message := "Internal server error"
	var connErr *opencorporates.ConnectionError
	var parseErr *opencorporates.ParseError
	if errors.As(err, &connErr) {
		message = "Error connecting to API"
	} else if errors.As(err, &parseErr) {
		message = "Error parsing API response"
	}

	response := api.NewFailureResponse(message)
	if !c.ProdMode {
		response.Error = err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, response)
}

func queryParams(ctx *gin.Context) map[string]string {
	values := ctx.Request.URL.Query()
	params := make(map[string]string, len(values))
	for key, list := range values {
		if len(list) > 0 {
			params[key] = list[0]
		}
	}
	return params
}

func isProdEnv() bool {
	env := os.Getenv("APP_ENV")
	return env == "prod" || env == "production"
}

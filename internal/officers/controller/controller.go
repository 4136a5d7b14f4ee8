package controller

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/corpscope/corpscope/internal/officers/handler"
	"github.com/corpscope/corpscope/pkg/api"
	"github.com/corpscope/corpscope/pkg/opencorporates"
	"github.com/gin-gonic/gin"
)

const missingQueryMessage = "Missing required parameter: q (query) is required"

type Officers interface {
	Search(ctx *gin.Context)
	Get(ctx *gin.Context)
}

var (
	officersController Officers
	once               sync.Once
)

type V1 struct {
	Officers handler.Officers
	ProdMode bool
}

func NewOfficersController() Officers {
	if officersController == nil {
		once.Do(func() {
			officersController = &V1{
				Officers: handler.NewOfficersHandler(opencorporates.GetClient()),
				ProdMode: isProdEnv(),
			}
		})
	}
	return officersController
}

func (c *V1) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if strings.TrimSpace(query) == "" {
		ctx.JSON(api.NewBadRequestError(missingQueryMessage).StatusCode, api.NewFailureResponse(missingQueryMessage))
		return
	}

	response, err := c.Officers.Search(query, queryParams(ctx))
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *V1) Get(ctx *gin.Context) {
	officerID := strings.TrimSpace(ctx.Param("officer_id"))
	if officerID == "" {
		message := "Missing required parameter: officer_id is required"
		ctx.JSON(api.NewBadRequestError(message).StatusCode, api.NewFailureResponse(message))
		return
	}

	response, err := c.Officers.Get(officerID, queryParams(ctx))
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

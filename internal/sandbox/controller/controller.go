package controller

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/corpscope/corpscope/internal/sandbox/handler"
	"github.com/corpscope/corpscope/internal/sandbox/repository"
	"github.com/corpscope/corpscope/pkg/api"
	"github.com/gin-gonic/gin"
)

const (
	defaultGenerateCount = 10
	maxGenerateCount     = 100

	missingIdMessage     = "Missing required parameter: id is required"
	missingFieldsMessage = "Missing required parameter: name, company_number and jurisdiction_code are required"
	notFoundMessage      = "Sample company not found"
)

type Sandbox interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Generate(ctx *gin.Context)
}

var (
	sandboxController Sandbox
	once              sync.Once
)

type V1 struct {
	Sandbox  handler.Sandbox
	ProdMode bool
}

func NewSandboxController() Sandbox {
	if sandboxController == nil {
		once.Do(func() {
			sandboxController = &V1{
				Sandbox:  handler.NewSandboxHandler(repository.GetRepository()),
				ProdMode: isProdEnv(),
			}
		})
	}
	return sandboxController
}

func (c *V1) List(ctx *gin.Context) {
	response, err := c.Sandbox.List()
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *V1) Get(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		ctx.JSON(api.NewBadRequestError(missingIdMessage).StatusCode, api.NewFailureResponse(missingIdMessage))
		return
	}

	response, err := c.Sandbox.Get(id)
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *V1) Create(ctx *gin.Context) {
	var request handler.CompanyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, api.NewFailureResponse("Invalid request body"))
		return
	}
	if !hasRequiredFields(&request) {
		ctx.JSON(http.StatusBadRequest, api.NewFailureResponse(missingFieldsMessage))
		return
	}

	response, err := c.Sandbox.Create(&request)
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

func (c *V1) Update(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		ctx.JSON(api.NewBadRequestError(missingIdMessage).StatusCode, api.NewFailureResponse(missingIdMessage))
		return
	}

	var request handler.CompanyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, api.NewFailureResponse("Invalid request body"))
		return
	}
	if !hasRequiredFields(&request) {
		ctx.JSON(http.StatusBadRequest, api.NewFailureResponse(missingFieldsMessage))
		return
	}

	response, err := c.Sandbox.Update(id, &request)
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (c *V1) Delete(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		ctx.JSON(api.NewBadRequestError(missingIdMessage).StatusCode, api.NewFailureResponse(missingIdMessage))
		return
	}

	if err := c.Sandbox.Delete(id); err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *V1) Generate(ctx *gin.Context) {
	request := handler.GenerateRequest{Count: defaultGenerateCount}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, api.NewFailureResponse("Invalid request body"))
			return
		}
	}
	if request.Count == 0 {
		request.Count = defaultGenerateCount
	}
	if request.Count < 1 || request.Count > maxGenerateCount {
		message := fmt.Sprintf("count must be between 1 and %d", maxGenerateCount)
		ctx.JSON(http.StatusBadRequest, api.NewFailureResponse(message))
		return
	}

	response, err := c.Sandbox.Generate(request.Count)
	if err != nil {
		c.respondFailure(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

func (c *V1) respondFailure(ctx *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, api.NewFailureResponse(notFoundMessage))
		return
	}

	response := api.NewFailureResponse("Internal server error")
	if !c.ProdMode {
		response.Error = err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, response)
}

func hasRequiredFields(request *handler.CompanyRequest) bool {
	return strings.TrimSpace(request.Name) != "" &&
		strings.TrimSpace(request.CompanyNumber) != "" &&
		strings.TrimSpace(request.JurisdictionCode) != ""
}

func isProdEnv() bool {
	env := os.Getenv("APP_ENV")
	return env == "prod" || env == "production"
}

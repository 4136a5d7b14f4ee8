package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corpscope/corpscope/internal/companies/handler"
	"github.com/corpscope/corpscope/pkg/opencorporates"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCompaniesHandler is a mock for handler.Companies
type MockCompaniesHandler struct {
	mock.Mock
}

func (m *MockCompaniesHandler) Search(query string, params map[string]string) (*handler.SearchResponse, error) {
	args := m.Called(query, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*handler.SearchResponse), args.Error(1)
}

func (m *MockCompaniesHandler) Get(jurisdictionCode, companyNumber string, params map[string]string) (*handler.GetResponse, error) {
	args := m.Called(jurisdictionCode, companyNumber, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*handler.GetResponse), args.Error(1)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCompaniesController_Search(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		prodMode       bool
		mockSetup      func(*MockCompaniesHandler)
		expectedStatus int
		validateBody   func(t *testing.T, body map[string]interface{})
		description    string
	}{
		{
			name: "valid query returns search envelope",
			url:  "/api/companies/search?q=Apple",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", map[string]string{"q": "Apple"}).
					Return(&handler.SearchResponse{
						Success: true,
						Count:   1,
						Data:    []interface{}{map[string]interface{}{"name": "Apple Inc"}},
						Query:   "Apple",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, float64(1), body["count"])
				assert.Equal(t, "Apple", body["query"])
			},
			description: "Handler result should be returned as-is with 200",
		},
		{
			name:           "missing q returns bad request",
			url:            "/api/companies/search",
			mockSetup:      func(m *MockCompaniesHandler) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "Missing required parameter: q (query) is required", body["message"])
			},
			description: "Missing q should be rejected before the handler is called",
		},
		{
			name:           "whitespace-only q returns bad request",
			url:            "/api/companies/search?q=%20%20",
			mockSetup:      func(m *MockCompaniesHandler) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Missing required parameter: q (query) is required", body["message"])
			},
			description: "Whitespace-only q should be rejected",
		},
		{
			name: "extra params are forwarded to the handler",
			url:  "/api/companies/search?q=Apple&jurisdiction_code=us_ca&page=2",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", map[string]string{"q": "Apple", "jurisdiction_code": "us_ca", "page": "2"}).
					Return(&handler.SearchResponse{Success: true, Count: 0, Data: []interface{}{}, Query: "Apple", JurisdictionCode: "us_ca"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "us_ca", body["jurisdiction_code"])
			},
			description: "Query parameters should reach the handler unchanged",
		},
		{
			name: "upstream error keeps status and body",
			url:  "/api/companies/search?q=Apple",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", mock.Anything).
					Return(nil, &opencorporates.APIError{
						StatusCode: http.StatusNotFound,
						HTTPStatus: "404 Not Found",
						Body:       map[string]interface{}{"error": "not found"},
					})
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "Error from API", body["message"])
				data, ok := body["data"].(map[string]interface{})
				if !ok {
					t.Fatal("expected upstream body under data")
				}
				assert.Equal(t, "not found", data["error"])
			},
			description: "Upstream non-2xx should be forwarded with its body",
		},
		{
			name: "missing credential returns 500 with fixed message",
			url:  "/api/companies/search?q=Apple",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", mock.Anything).
					Return(nil, opencorporates.ErrTokenNotConfigured)
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "API token not configured. Set OPENCORPORATES_API_TOKEN.", body["message"])
			},
			description: "Unset credential should surface the configuration message",
		},
		{
			name: "connection failure returns 500 with detail outside production",
			url:  "/api/companies/search?q=Apple",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", mock.Anything).
					Return(nil, &opencorporates.ConnectionError{Err: errors.New("dial tcp: connection refused")})
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Error connecting to API", body["message"])
				detail, _ := body["error"].(string)
				assert.Contains(t, detail, "connection refused")
			},
			description: "Connection errors should include detail when not in production",
		},
		{
			name:     "connection failure hides detail in production",
			url:      "/api/companies/search?q=Apple",
			prodMode: true,
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", mock.Anything).
					Return(nil, &opencorporates.ConnectionError{Err: errors.New("dial tcp: connection refused")})
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Error connecting to API", body["message"])
				assert.NotContains(t, body, "error")
			},
			description: "Production responses must not leak error detail",
		},
		{
			name: "unparsable upstream body returns 500 parse message",
			url:  "/api/companies/search?q=Apple",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", mock.Anything).
					Return(nil, &opencorporates.ParseError{Err: errors.New("invalid character '<'")})
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Error parsing API response", body["message"])
			},
			description: "Parse failures should map to the parse message",
		},
		{
			name: "unexpected error returns generic 500",
			url:  "/api/companies/search?q=Apple",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Search", "Apple", mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Internal server error", body["message"])
			},
			description: "Unknown errors should not leak beyond the generic message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHandler := new(MockCompaniesHandler)
			if tt.mockSetup != nil {
				tt.mockSetup(mockHandler)
			}

			controller := &V1{
				Companies: mockHandler,
				ProdMode:  tt.prodMode,
			}

			router := setupTestRouter()
			router.GET("/api/companies/search", controller.Search)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.validateBody != nil {
				var body map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &body)
				assert.NoError(t, err, "response body should be valid JSON")
				tt.validateBody(t, body)
			}

			mockHandler.AssertExpectations(t)
		})
	}
}

func TestCompaniesController_Get(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(*MockCompaniesHandler)
		expectedStatus int
		validateBody   func(t *testing.T, body map[string]interface{})
		description    string
	}{
		{
			name: "valid identifiers return company detail",
			url:  "/api/companies/us_ca/C0806592",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Get", "us_ca", "C0806592", map[string]string{}).
					Return(&handler.GetResponse{
						Success:          true,
						Data:             handler.CompanyDetail{Company: map[string]interface{}{"name": "Apple Inc"}},
						JurisdictionCode: "us_ca",
						CompanyNumber:    "C0806592",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "us_ca", body["jurisdiction_code"])
				assert.Equal(t, "C0806592", body["company_number"])
			},
			description: "Handler result should be returned with echoed identifiers",
		},
		{
			name:           "whitespace jurisdiction code returns bad request",
			url:            "/api/companies/%20/C0806592",
			mockSetup:      func(m *MockCompaniesHandler) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Missing required parameter: jurisdiction_code and company_number are required", body["message"])
			},
			description: "Blank path parameters should be rejected",
		},
		{
			name: "upstream 404 keeps status and body",
			url:  "/api/companies/gb/00000000",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Get", "gb", "00000000", mock.Anything).
					Return(nil, &opencorporates.APIError{
						StatusCode: http.StatusNotFound,
						HTTPStatus: "404 Not Found",
						Body:       map[string]interface{}{"error": map[string]interface{}{"message": "Record not found"}},
					})
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Error from API", body["message"])
				assert.NotNil(t, body["data"])
			},
			description: "Upstream 404 should be forwarded, not translated",
		},
		{
			name: "query params are forwarded on fetch",
			url:  "/api/companies/us_ca/C0806592?sparse=true",
			mockSetup: func(m *MockCompaniesHandler) {
				m.On("Get", "us_ca", "C0806592", map[string]string{"sparse": "true"}).
					Return(&handler.GetResponse{Success: true, JurisdictionCode: "us_ca", CompanyNumber: "C0806592"}, nil)
			},
			expectedStatus: http.StatusOK,
			description:    "Non-pagination query parameters should reach the handler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHandler := new(MockCompaniesHandler)
			if tt.mockSetup != nil {
				tt.mockSetup(mockHandler)
			}

			controller := &V1{
				Companies: mockHandler,
			}

			router := setupTestRouter()
			router.GET("/api/companies/:jurisdiction_code/:company_number", controller.Get)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.validateBody != nil {
				var body map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &body)
				assert.NoError(t, err, "response body should be valid JSON")
				tt.validateBody(t, body)
			}

			mockHandler.AssertExpectations(t)
		})
	}
}

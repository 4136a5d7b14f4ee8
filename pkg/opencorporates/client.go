package opencorporates

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/corpscope/corpscope/internal/configs"
	"github.com/corpscope/corpscope/pkg/metric"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://api.opencorporates.com"
	defaultTimeout = 30 * time.Second
	apiVersionPath = "/v0.4"
	serviceName    = "opencorporates"

	// SensitiveKey is the payload field that must never reach callers.
	SensitiveKey = "opencorporates_url"
)

// Client issues lookups against the OpenCorporates REST API. Every
// method returns the parsed JSON payload of a 2xx response; failures are
// reported as ErrTokenNotConfigured, *APIError, *ConnectionError or
// *ParseError.
type Client interface {
	SearchCompanies(params map[string]string) (interface{}, error)
	GetCompany(jurisdictionCode, companyNumber string, params map[string]string) (interface{}, error)
	SearchOfficers(params map[string]string) (interface{}, error)
	GetOfficer(officerID string, params map[string]string) (interface{}, error)
}

type clientImpl struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

var (
	once     sync.Once
	instance Client
)

// Init builds the shared client from app configuration
func Init(config configs.Configs) Client {
	once.Do(func() {
		baseURL := config.OpenCorporatesBaseUrl
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		timeout := defaultTimeout
		if config.OpenCorporatesTimeoutInMs > 0 {
			timeout = time.Duration(config.OpenCorporatesTimeoutInMs) * time.Millisecond
		}
		instance = NewClient(baseURL, config.OpenCorporatesApiToken, timeout)
	})
	return instance
}

// GetClient returns the shared client. Init must have been called
func GetClient() Client {
	return instance
}

// NewClient builds a standalone client, bypassing the shared instance
func NewClient(baseURL, token string, timeout time.Duration) Client {
	return &clientImpl{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *clientImpl) SearchCompanies(params map[string]string) (interface{}, error) {
	return c.get("/companies/search", params, false)
}

func (c *clientImpl) GetCompany(jurisdictionCode, companyNumber string, params map[string]string) (interface{}, error) {
	path := "/companies/" + url.PathEscape(jurisdictionCode) + "/" + url.PathEscape(companyNumber)
	return c.get(path, params, true)
}

func (c *clientImpl) SearchOfficers(params map[string]string) (interface{}, error) {
	return c.get("/officers/search", params, false)
}

func (c *clientImpl) GetOfficer(officerID string, params map[string]string) (interface{}, error) {
	return c.get("/officers/"+url.PathEscape(officerID), params, true)
}

// get performs a single upstream GET, buffering the full body before any
// decoding. No retries.
func (c *clientImpl) get(path string, params map[string]string, excludePagination bool) (interface{}, error) {
	if c.Token == "" {
		return nil, ErrTokenNotConfigured
	}
	fullURL := c.BaseURL + apiVersionPath + path + "?" + BuildQuery(params, c.Token, excludePagination)

	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	metricTags := metric.BuildTag(
		metric.NewTag(metric.TagExternalService, serviceName),
		metric.NewTag(metric.TagExternalServicePath, path),
		metric.NewTag(metric.TagExternalServiceMethod, http.MethodGet),
	)

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metric.UpdateTags(&metricTags, metric.NewTag(metric.TagExternalServiceStatusCode, "0"))
		metric.Incr(metric.ExternalApiRequestCount, metricTags)
		log.Error().Err(err).Str("path", path).Msg("OpenCorporates request failed")
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	metric.UpdateTags(&metricTags, metric.NewTag(metric.TagExternalServiceStatusCode, strconv.Itoa(resp.StatusCode)))
	metric.Incr(metric.ExternalApiRequestCount, metricTags)
	metric.Timing(metric.ExternalApiRequestLatency, time.Since(startTime), metricTags)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("OpenCorporates body read failed")
		return nil, &ConnectionError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var parsed interface{}
		if err := json.Unmarshal(body, &parsed); err != nil {
			parsed = string(body)
		}
		upstreamMsg := gjson.GetBytes(body, "error.message").String()
		if upstreamMsg == "" {
			upstreamMsg = gjson.GetBytes(body, "error").String()
		}
		log.Debug().
			Int("status", resp.StatusCode).
			Str("message", upstreamMsg).
			Str("path", path).
			Msg("OpenCorporates returned error")
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			HTTPStatus: http.StatusText(resp.StatusCode),
			Body:       parsed,
		}
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Error().Err(err).Str("path", path).Msg("OpenCorporates returned unparsable body")
		return nil, &ParseError{Err: err}
	}
	return payload, nil
}

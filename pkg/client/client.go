package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
	"github.com/colorstacknyu/colorstack-site/internal/resource"
)

// Client is the API client for the site API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
	if e.Details != "" {
		msg += " - " + e.Details
	}
	return msg
}

// Health is the /health payload
type Health struct {
	Status      string          `json:"status"`
	Environment string          `json:"environment"`
	Datasets    map[string]bool `json:"datasets"`
}

// GetEvents retrieves the valid events
func (c *Client) GetEvents(ctx context.Context) ([]domain.Event, error) {
	var response struct {
		Events []domain.Event `json:"events"`
	}
	if err := c.Get(ctx, "/api/events", &response); err != nil {
		return nil, err
	}
	return response.Events, nil
}

// GetTeam retrieves the grouped roster
func (c *Client) GetTeam(ctx context.Context) (*domain.Roster, error) {
	var roster domain.Roster
	if err := c.Get(ctx, "/api/team", &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

// GetResources retrieves the static resources file
func (c *Client) GetResources(ctx context.Context) ([]domain.Resource, error) {
	body, err := c.raw(ctx, "/resources.json")
	if err != nil {
		return nil, err
	}
	return resource.Parse(body)
}

// GetCalendar retrieves the iCalendar feed
func (c *Client) GetCalendar(ctx context.Context) (string, error) {
	body, err := c.raw(ctx, "/api/events/calendar.ics")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.Get(ctx, "/health", &health); err != nil {
		return nil, err
	}
	if health.Status != "ok" {
		return &health, fmt.Errorf("unhealthy status: %s", health.Status)
	}
	return &health, nil
}

// Get decodes the JSON body at path into result.
// Absolute URLs are fetched as they are; anything else is relative to the base URL.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	body, err := c.raw(ctx, path)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, result)
}

func (c *Client) raw(ctx context.Context, path string) ([]byte, error) {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: fmt.Sprintf("Failed to fetch (%d)", status),
	}

	var payload struct {
		Error   string `json:"error"`
		Details string `json:"details"`
		Code    string `json:"code"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Details = payload.Details
		apiErr.Code = payload.Code
	}
	return apiErr
}

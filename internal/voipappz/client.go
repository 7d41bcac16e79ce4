// Package voipappz wraps the VoipAppz platform HTTP APIs. Responses are
// pass-through JSON: callers receive decoded maps, not typed structs, because
// the platform owns the payload shapes.
package voipappz

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm-dashboard-backend/internal/config"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/logger"
)

// Client talks to the VoipAppz call-management and analytics API
type Client struct {
	baseURL    string
	orgToken   string
	userToken  string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a platform client authenticated with an organization
// token and, optionally, a user token for user-scoped operations.
func NewClient(cfg *config.Config, orgToken, userToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.VoipappzAPIBaseURL, "/"),
		orgToken:   orgToken,
		userToken:  userToken,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.New().WithField("component", "voipappz_client"),
	}
}

// GetLiveCalls returns currently active calls matching the filters
func (c *Client) GetLiveCalls(filters map[string]string) (map[string]interface{}, error) {
	return c.get("/calls/live", filters)
}

// GetCallHistory returns historical calls matching the filters
func (c *Client) GetCallHistory(filters map[string]string) (map[string]interface{}, error) {
	return c.get("/calls/history", filters)
}

// GetCallDetails returns one call record
func (c *Client) GetCallDetails(callID string) (map[string]interface{}, error) {
	return c.get("/calls/"+url.PathEscape(callID), nil)
}

// GetCallRecordings returns the recordings attached to a call
func (c *Client) GetCallRecordings(callID string) (map[string]interface{}, error) {
	return c.get("/calls/"+url.PathEscape(callID)+"/recordings", nil)
}

// GetAgentsStatus returns agent presence, optionally narrowed to one
// platform organization
func (c *Client) GetAgentsStatus(organizationID string) (map[string]interface{}, error) {
	filters := map[string]string{}
	if organizationID != "" {
		filters["organization_id"] = organizationID
	}
	return c.get("/agents/status", filters)
}

// GetAgentActivity returns one agent's activity within a date range
func (c *Client) GetAgentActivity(agentID string, dateRange map[string]string) (map[string]interface{}, error) {
	return c.get("/agents/"+url.PathEscape(agentID)+"/activity", dateRange)
}

// GetCallAnalytics returns aggregated call analytics for a date range
func (c *Client) GetCallAnalytics(dateRange map[string]string) (map[string]interface{}, error) {
	return c.get("/analytics/calls", dateRange)
}

// GetDashboardMetrics returns platform-side dashboard metrics
func (c *Client) GetDashboardMetrics(organizationID string) (map[string]interface{}, error) {
	filters := map[string]string{}
	if organizationID != "" {
		filters["organization_id"] = organizationID
	}
	return c.get("/analytics/dashboard", filters)
}

// GetOrganizationStats returns platform-side stats for one organization
func (c *Client) GetOrganizationStats(organizationID string) (map[string]interface{}, error) {
	return c.get("/organizations/"+url.PathEscape(organizationID)+"/stats", nil)
}

func (c *Client) get(endpoint string, query map[string]string) (map[string]interface{}, error) {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			if value != "" {
				values.Set(key, value)
			}
		}
		if encoded := values.Encode(); encoded != "" {
			requestURL += "?" + encoded
		}
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create platform request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.orgToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.orgToken)
	}
	if c.userToken != "" {
		req.Header.Set("X-User-Token", c.userToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithField("endpoint", endpoint).Errorf("platform request failed: %v", err)
		return nil, fmt.Errorf("%w: request failed: %v", apperrors.ErrPlatformAPI, err)
	}
	defer resp.Body.Close()

	return c.handleResponse(endpoint, resp)
}

func (c *Client) handleResponse(endpoint string, resp *http.Response) (map[string]interface{}, error) {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var payload map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrPlatformAPI, err)
		}
		return payload, nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.WithField("endpoint", endpoint).Error("platform rejected credentials")
		return nil, apperrors.ErrPlatformUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.ErrPlatformNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, apperrors.ErrPlatformRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.WithField("endpoint", endpoint).
			Errorf("platform API error: status=%d body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrPlatformAPI, resp.StatusCode)
	}
}

package voipappz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm-dashboard-backend/internal/config"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/logger"
)

// AuthClient talks to the VoipAppz authentication API. It is separate from
// Client because verification runs before any request credential exists; it
// authenticates with the application API key instead.
type AuthClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewAuthClient creates an authentication API client
func NewAuthClient(cfg *config.Config) *AuthClient {
	return &AuthClient{
		baseURL:    strings.TrimRight(cfg.VoipappzAuthAPIBaseURL, "/"),
		apiKey:     cfg.VoipappzAPIKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.New().WithField("component", "voipappz_auth_client"),
	}
}

func (c *AuthClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}

// VerificationResponse is the auth API's answer to a token verification
type VerificationResponse struct {
	Valid    bool                   `json:"valid"`
	UserData map[string]interface{} `json:"user_data"`
}

// VerifyUserToken asks the platform whether the token is valid and, if so,
// returns the identity payload it carries. A platform rejection surfaces as
// ErrPlatformUnauthorized; a transport failure as ErrAuthServiceUnavailable
// so callers can tell a bad credential from a dependency outage.
func (c *AuthClient) VerifyUserToken(token string) (*VerificationResponse, error) {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/auth/verify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create verification request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("auth API request failed: %v", err)
		return nil, apperrors.ErrAuthServiceUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var verification VerificationResponse
		if err := json.NewDecoder(resp.Body).Decode(&verification); err != nil {
			c.log.Errorf("auth API returned malformed response: %v", err)
			return nil, apperrors.ErrAuthServiceUnavailable
		}
		return &verification, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, apperrors.ErrPlatformUnauthorized
	default:
		c.log.Errorf("auth API error: status=%d", resp.StatusCode)
		return nil, apperrors.ErrAuthServiceUnavailable
	}
}

// GetUserDetails fetches one platform user record, nil when absent
func (c *AuthClient) GetUserDetails(userID string) (map[string]interface{}, error) {
	return c.get("/users/" + url.PathEscape(userID))
}

// GetOrganizationDetails fetches one platform organization record, nil when absent
func (c *AuthClient) GetOrganizationDetails(orgID string) (map[string]interface{}, error) {
	return c.get("/organizations/" + url.PathEscape(orgID))
}

func (c *AuthClient) get(endpoint string) (map[string]interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth API request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithField("endpoint", endpoint).Errorf("auth API request failed: %v", err)
		return nil, apperrors.ErrAuthServiceUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var payload map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, apperrors.ErrAuthServiceUnavailable
		}
		return payload, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, apperrors.ErrPlatformUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	default:
		c.log.WithField("endpoint", endpoint).Errorf("auth API error: status=%d", resp.StatusCode)
		return nil, apperrors.ErrAuthServiceUnavailable
	}
}

package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"crm-dashboard-backend/internal/config"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/logger"
	"crm-dashboard-backend/internal/voipappz"
)

// Identity is the structured record a validated platform token resolves to
type Identity struct {
	ExternalUserID   string   `json:"user_id"`
	Email            string   `json:"email"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Role             string   `json:"role"`
	OrganizationID   string   `json:"organization_id"`
	OrganizationName string   `json:"organization_name"`
	Permissions      []string `json:"permissions"`
	IssuedAt         int64    `json:"iat"`
	Expiry           int64    `json:"exp"`
}

// TokenVerifier is the delegated-verification dependency of the validator
type TokenVerifier interface {
	VerifyUserToken(token string) (*voipappz.VerificationResponse, error)
}

// TokenValidator resolves opaque bearer tokens to identities. Exactly one
// strategy is active per process: local base64 decoding when mock auth is
// enabled (non-production), delegated platform verification otherwise.
// Validation never touches the identity store.
type TokenValidator struct {
	cfg      *config.Config
	verifier TokenVerifier
	log      *logger.Logger
}

// NewTokenValidator creates a token validator
func NewTokenValidator(cfg *config.Config, verifier TokenVerifier) *TokenValidator {
	return &TokenValidator{
		cfg:      cfg,
		verifier: verifier,
		log:      logger.New().WithField("component", "token_validator"),
	}
}

// Validate resolves a bearer token to an identity. Rejections surface as
// ErrInvalidToken; a verification-dependency outage as
// ErrAuthServiceUnavailable.
func (v *TokenValidator) Validate(token string) (*Identity, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidToken
	}
	if v.useMockAuth() {
		return v.decodeLocal(token)
	}
	return v.verifyDelegated(token)
}

func (v *TokenValidator) useMockAuth() bool {
	return v.cfg.VoipappzUseMockAuth && !v.cfg.IsProduction()
}

// decodeLocal treats the token as a base64-encoded JSON identity payload
func (v *TokenValidator) decodeLocal(token string) (*Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		v.log.Debugf("mock token decode failed: %v", err)
		return nil, apperrors.ErrInvalidToken
	}

	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		v.log.Debugf("mock token parse failed: %v", err)
		return nil, apperrors.ErrInvalidToken
	}
	if identity.ExternalUserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	if identity.Expiry > 0 && time.Now().Unix() > identity.Expiry {
		return nil, apperrors.ErrInvalidToken
	}

	return &identity, nil
}

// verifyDelegated forwards the token to the platform authentication API
func (v *TokenValidator) verifyDelegated(token string) (*Identity, error) {
	verification, err := v.verifier.VerifyUserToken(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlatformUnauthorized) {
			return nil, apperrors.ErrInvalidToken
		}
		v.log.Errorf("token verification unavailable: %v", err)
		return nil, apperrors.ErrAuthServiceUnavailable
	}
	if !verification.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	raw, err := json.Marshal(verification.UserData)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if identity.ExternalUserID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return &identity, nil
}

// CreateMockToken base64-encodes a default identity payload merged with the
// overrides. Returns "" outside development and test; production never mints
// tokens.
func CreateMockToken(cfg *config.Config, overrides map[string]interface{}) string {
	if cfg.IsProduction() {
		return ""
	}

	payload := map[string]interface{}{
		"user_id":           "test_user_123",
		"email":             "test@voipappz.io",
		"first_name":        "Test",
		"last_name":         "User",
		"role":              "admin",
		"organization_id":   "org_456",
		"organization_name": "Test Organization",
		"permissions":       []string{"calls:read", "calls:write", "dashboard:read", "users:manage"},
		"iat":               time.Now().Unix(),
		"exp":               time.Now().Add(24 * time.Hour).Unix(),
	}
	for key, value := range overrides {
		payload[key] = value
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

package voipappz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-dashboard-backend/internal/config"
	apperrors "crm-dashboard-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthClient(serverURL string) *AuthClient {
	return NewAuthClient(&config.Config{
		VoipappzAuthAPIBaseURL: serverURL,
		VoipappzAPIKey:         "app-api-key",
	})
}

func TestVerifyUserToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/verify", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "platform-token-123", body["token"])

		json.NewEncoder(w).Encode(VerificationResponse{
			Valid: true,
			UserData: map[string]interface{}{
				"user_id": "vpz_user_1",
				"email":   "agent@acme.example",
			},
		})
	}))
	defer server.Close()

	verification, err := newTestAuthClient(server.URL).VerifyUserToken("platform-token-123")

	require.NoError(t, err)
	assert.True(t, verification.Valid)
	assert.Equal(t, "vpz_user_1", verification.UserData["user_id"])
}

func TestVerifyUserTokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestAuthClient(server.URL).VerifyUserToken("expired-token")

	assert.ErrorIs(t, err, apperrors.ErrPlatformUnauthorized)
}

func TestVerifyUserTokenOutage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestAuthClient(server.URL).VerifyUserToken("platform-token-123")

	assert.ErrorIs(t, err, apperrors.ErrAuthServiceUnavailable)
}

func TestVerifyUserTokenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestAuthClient(server.URL).VerifyUserToken("platform-token-123")

	assert.ErrorIs(t, err, apperrors.ErrAuthServiceUnavailable)
}

func TestVerifyUserTokenMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	_, err := newTestAuthClient(server.URL).VerifyUserToken("platform-token-123")

	assert.ErrorIs(t, err, apperrors.ErrAuthServiceUnavailable)
}

func TestGetUserDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/vpz_user_1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{"user_id": "vpz_user_1", "role": "agent"})
	}))
	defer server.Close()

	payload, err := newTestAuthClient(server.URL).GetUserDetails("vpz_user_1")

	require.NoError(t, err)
	assert.Equal(t, "agent", payload["role"])
}

func TestGetUserDetailsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	payload, err := newTestAuthClient(server.URL).GetUserDetails("vpz_user_unknown")

	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestGetOrganizationDetailsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestAuthClient(server.URL).GetOrganizationDetails("org_456")

	assert.ErrorIs(t, err, apperrors.ErrPlatformUnauthorized)
}

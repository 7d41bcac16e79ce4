package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/config"
	"crm-dashboard-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	assert.False(t, auth.Authorize(nil, "dashboard:read"))

	// Owners hold every permission
	owner := &models.User{Role: models.RoleOwner}
	assert.True(t, auth.Authorize(owner, "dashboard:read"))
	assert.True(t, auth.Authorize(owner, "users:manage"))

	// Everyone else needs the named permission string
	agent := &models.User{
		Role:        models.RoleAgent,
		Permissions: models.StringList{"calls:read", "dashboard:read"},
	}
	assert.True(t, auth.Authorize(agent, "dashboard:read"))
	assert.False(t, auth.Authorize(agent, "users:manage"))

	// Admin role grants nothing by itself
	admin := &models.User{Role: models.RoleAdmin}
	assert.False(t, auth.Authorize(admin, "users:manage"))
}

func extractionMiddleware(cfg *config.Config) *auth.Middleware {
	return auth.NewMiddleware(cfg, nil, nil, auth.NewSessionStore(cfg))
}

func requestContext(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestExtractTokenHeader(t *testing.T) {
	m := extractionMiddleware(sessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	assert.Equal(t, "header-token", m.ExtractToken(requestContext(req)))
}

func TestExtractTokenIgnoresMalformedHeader(t *testing.T) {
	m := extractionMiddleware(sessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")

	assert.Empty(t, m.ExtractToken(requestContext(req)))
}

func TestExtractTokenCookie(t *testing.T) {
	m := extractionMiddleware(sessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: "cookie-token"})

	assert.Equal(t, "cookie-token", m.ExtractToken(requestContext(req)))
}

func TestExtractTokenHeaderWinsOverCookie(t *testing.T) {
	m := extractionMiddleware(sessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: "cookie-token"})

	assert.Equal(t, "header-token", m.ExtractToken(requestContext(req)))
}

func TestExtractTokenSession(t *testing.T) {
	cfg := sessionConfig()
	store := auth.NewSessionStore(cfg)
	m := auth.NewMiddleware(cfg, nil, nil, store)

	cookie := writeSession(t, store, "session-token")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	assert.Equal(t, "session-token", m.ExtractToken(requestContext(req)))
}

func TestExtractTokenQueryParamNonProduction(t *testing.T) {
	m := extractionMiddleware(sessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)

	assert.Equal(t, "query-token", m.ExtractToken(requestContext(req)))
}

func TestExtractTokenQueryParamRefusedInProduction(t *testing.T) {
	m := extractionMiddleware(&config.Config{Environment: "production", JWTSecret: "prod-secret"})

	req := httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)

	assert.Empty(t, m.ExtractToken(requestContext(req)))
}

func TestAuthenticateInvalidTokenClearsStoredCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment:         "development",
		JWTSecret:           "test-secret",
		VoipappzUseMockAuth: true,
	}
	store := auth.NewSessionStore(cfg)
	m := auth.NewMiddleware(cfg, auth.NewTokenValidator(cfg, nil), nil, store)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: "!!not-a-token!!"})
	c.Request = req

	m.Authenticate()(c)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.True(t, c.IsAborted())

	// Both the session slot and the plain token cookie are expired.
	cleared := map[string]bool{}
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Value == "" && cookie.MaxAge < 0 {
			cleared[cookie.Name] = true
		}
	}
	assert.True(t, cleared[auth.SessionCookieName])
	assert.True(t, cleared[auth.TokenCookieName])
}

func TestRequireOrganization(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := extractionMiddleware(sessionConfig())

	// Without tenant context
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	m.RequireOrganization()(c)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.True(t, c.IsAborted())

	// With tenant context
	recorder = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(auth.ContextOrganizationKey, &models.Organization{})
	m.RequireOrganization()(c)
	assert.False(t, c.IsAborted())
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := extractionMiddleware(sessionConfig())

	// Unauthenticated
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	m.RequirePermission("users:manage")(c)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Authenticated without the permission
	recorder = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(auth.ContextUserKey, &models.User{Role: models.RoleAgent})
	m.RequirePermission("users:manage")(c)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// Owner passes
	recorder = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(auth.ContextUserKey, &models.User{Role: models.RoleOwner})
	m.RequirePermission("users:manage")(c)
	assert.False(t, c.IsAborted())
}

package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/config"
	"crm-dashboard-backend/internal/database/models"
	"crm-dashboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler. It runs
// against the real validator in mock-auth mode; the handler surface and the
// local token strategy are exercised together.
type AuthHandlerTestSuite struct {
	suite.Suite
	cfg       *config.Config
	sessions  *auth.SessionStore
	handler   *AuthHandler
	httpSuite *testutils.HTTPTestSuite
	org       *models.Organization
	user      *models.User
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		Environment:         "development",
		JWTSecret:           "test-secret",
		VoipappzLoginURL:    "https://auth.voipappz.io/login",
		VoipappzAppID:       "crm-dashboard",
		VoipappzUseMockAuth: true,
	}
	suite.sessions = auth.NewSessionStore(suite.cfg)
	suite.handler = NewAuthHandler(suite.cfg, auth.NewTokenValidator(suite.cfg, nil), suite.sessions)

	suite.org = &models.Organization{Name: "Acme Telecom", Slug: "acme-telecom", Plan: models.PlanFree}
	suite.org.ID = uuid.New()
	suite.user = &models.User{
		Email:       "agent@acme.example",
		FirstName:   "Sam",
		LastName:    "Chen",
		Role:        models.RoleAgent,
		Permissions: models.StringList{"calls:read", "dashboard:read"},
	}
	suite.user.ID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/auth/login", suite.handler.Login)
	suite.httpSuite.Router.GET("/auth/callback", suite.handler.Callback)
	suite.httpSuite.Router.POST("/auth/mock_token", suite.handler.MockToken)

	api := suite.httpSuite.Router.Group("/api/auth")
	api.POST("/verify", suite.handler.Verify)
	api.DELETE("/sign_out", suite.handler.SignOut)
	api.GET("/me", authenticatedContext(suite.org, suite.user, "platform-token"), suite.handler.Me)
	api.GET("/me_unauthenticated", suite.handler.Me)
}

// TestLoginRedirect tests the hosted-login redirect
func (suite *AuthHandlerTestSuite) TestLoginRedirect() {
	recorder := suite.httpSuite.MakeRequest("GET", "/auth/login?return_url=/dashboard", nil)

	assert.Equal(suite.T(), http.StatusFound, recorder.Code)

	location, err := url.Parse(recorder.Header().Get("Location"))
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "auth.voipappz.io", location.Host)
	assert.Equal(suite.T(), "/dashboard", location.Query().Get("return_url"))
	assert.Equal(suite.T(), "crm-dashboard", location.Query().Get("app_id"))
}

// TestLoginRedirectDefaultReturnURL tests the return_url fallback
func (suite *AuthHandlerTestSuite) TestLoginRedirectDefaultReturnURL() {
	recorder := suite.httpSuite.MakeRequest("GET", "/auth/login", nil)

	assert.Equal(suite.T(), http.StatusFound, recorder.Code)

	location, err := url.Parse(recorder.Header().Get("Location"))
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "/auth/callback", location.Query().Get("return_url"))
}

// TestCallback tests the token callback storing the session
func (suite *AuthHandlerTestSuite) TestCallback() {
	token := auth.CreateMockToken(suite.cfg, nil)
	suite.Require().NotEmpty(token)

	recorder := suite.httpSuite.MakeRequest("GET", "/auth/callback?token="+url.QueryEscape(token), nil)

	assert.Equal(suite.T(), http.StatusFound, recorder.Code)
	assert.Equal(suite.T(), "/", recorder.Header().Get("Location"))

	var sessionCookie *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == auth.SessionCookieName {
			sessionCookie = cookie
		}
	}
	suite.Require().NotNil(sessionCookie)
	assert.NotEmpty(suite.T(), sessionCookie.Value)
	assert.True(suite.T(), sessionCookie.HttpOnly)
}

// TestCallbackMissingToken tests the callback without a token
func (suite *AuthHandlerTestSuite) TestCallbackMissingToken() {
	recorder := suite.httpSuite.MakeRequest("GET", "/auth/callback", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

// TestCallbackInvalidToken tests the callback with a garbage token
func (suite *AuthHandlerTestSuite) TestCallbackInvalidToken() {
	recorder := suite.httpSuite.MakeRequest("GET", "/auth/callback?token=%21%21not-base64%21%21", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid or expired token")
}

// TestVerify tests verifying a posted token
func (suite *AuthHandlerTestSuite) TestVerify() {
	token := auth.CreateMockToken(suite.cfg, map[string]interface{}{"email": "sam.chen@acme.example"})
	suite.Require().NotEmpty(token)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/verify", map[string]interface{}{"token": token})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Valid    bool          `json:"valid"`
		Identity auth.Identity `json:"identity"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Valid)
	assert.Equal(suite.T(), "sam.chen@acme.example", response.Identity.Email)
	assert.Equal(suite.T(), "test_user_123", response.Identity.ExternalUserID)
}

// TestVerifyMissingToken tests the required-token binding
func (suite *AuthHandlerTestSuite) TestVerifyMissingToken() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/verify", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "required parameter missing")
}

// TestVerifyInvalidToken tests verifying a garbage token
func (suite *AuthHandlerTestSuite) TestVerifyInvalidToken() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/verify", map[string]interface{}{"token": "!!not-base64!!"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid or expired token")
}

// TestMe tests the identity introspection endpoint
func (suite *AuthHandlerTestSuite) TestMe() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/auth/me", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		User struct {
			ID          uuid.UUID `json:"id"`
			Email       string    `json:"email"`
			Role        string    `json:"role"`
			Permissions []string  `json:"permissions"`
		} `json:"user"`
		Organization struct {
			ID   uuid.UUID `json:"id"`
			Name string    `json:"name"`
			Slug string    `json:"slug"`
			Plan string    `json:"plan"`
		} `json:"organization"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), suite.user.ID, response.User.ID)
	assert.Equal(suite.T(), "agent@acme.example", response.User.Email)
	assert.Contains(suite.T(), response.User.Permissions, "dashboard:read")
	assert.Equal(suite.T(), suite.org.ID, response.Organization.ID)
	assert.Equal(suite.T(), "acme-telecom", response.Organization.Slug)
}

// TestMeUnauthenticated tests introspection without an identity
func (suite *AuthHandlerTestSuite) TestMeUnauthenticated() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/auth/me_unauthenticated", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

// TestSignOut tests clearing the session and token cookies
func (suite *AuthHandlerTestSuite) TestSignOut() {
	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/auth/sign_out", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	cleared := map[string]bool{}
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.MaxAge < 0 && cookie.Value == "" {
			cleared[cookie.Name] = true
		}
	}
	assert.True(suite.T(), cleared[auth.SessionCookieName])
	assert.True(suite.T(), cleared[auth.TokenCookieName])

	var response map[string]bool
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response["signed_out"])
}

// TestMockToken tests minting a development token
func (suite *AuthHandlerTestSuite) TestMockToken() {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/mock_token", map[string]interface{}{"role": "agent"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]string
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Require().NotEmpty(response["token"])

	identity, err := auth.NewTokenValidator(suite.cfg, nil).Validate(response["token"])
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "agent", identity.Role)
}

// TestMockTokenRefusedInProduction tests that production hides the endpoint
func (suite *AuthHandlerTestSuite) TestMockTokenRefusedInProduction() {
	prodCfg := &config.Config{Environment: "production", JWTSecret: "prod-secret"}
	handler := NewAuthHandler(prodCfg, auth.NewTokenValidator(prodCfg, nil), auth.NewSessionStore(prodCfg))

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/auth/mock_token", handler.MockToken)

	recorder := httpSuite.MakeRequest("POST", "/auth/mock_token", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/config"
	apperrors "crm-dashboard-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the authentication HTTP surface: hosted-login
// redirects, the token callback, identity introspection and sign-out
type AuthHandler struct {
	cfg       *config.Config
	validator *auth.TokenValidator
	sessions  *auth.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config, validator *auth.TokenValidator, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{
		cfg:       cfg,
		validator: validator,
		sessions:  sessions,
	}
}

// Login handles GET /auth/login
// @Summary Redirect to the hosted login page
// @Description Redirect the browser to the platform's hosted login with return_url and app_id
// @Tags auth
// @Param return_url query string false "Where the platform should send the browser back"
// @Success 302 "Redirect to hosted login"
// @Router /auth/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	returnURL := c.Query("return_url")
	if returnURL == "" {
		returnURL = "/auth/callback"
	}

	values := url.Values{}
	values.Set("return_url", returnURL)
	values.Set("app_id", h.cfg.VoipappzAppID)

	c.Redirect(http.StatusFound, h.cfg.VoipappzLoginURL+"?"+values.Encode())
}

// Callback handles GET /auth/callback
// @Summary Hosted-login callback
// @Description Validate the token handed back by the platform, store it in the session and redirect home
// @Tags auth
// @Param token query string true "Platform token"
// @Success 302 "Redirect to the application"
// @Failure 401 {object} ErrorResponse "Token missing or invalid"
// @Failure 503 {object} ErrorResponse "Authentication service unavailable"
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "message": "token missing"})
		return
	}

	if _, err := h.validator.Validate(token); err != nil {
		if errors.Is(err, apperrors.ErrAuthServiceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication service unavailable"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	if err := h.sessions.Write(c, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Me handles GET /api/auth/me
// @Summary Current identity
// @Description Return the authenticated user and organization
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Current user and organization"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	response := gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"first_name":  user.FirstName,
			"last_name":   user.LastName,
			"role":        user.Role,
			"permissions": user.Permissions,
		},
	}
	if org := auth.CurrentOrganization(c); org != nil {
		response["organization"] = gin.H{
			"id":   org.ID,
			"name": org.Name,
			"slug": org.Slug,
			"plan": org.Plan,
		}
	}
	c.JSON(http.StatusOK, response)
}

// VerifyRequest is the body of POST /api/auth/verify
type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// Verify handles POST /api/auth/verify
// @Summary Verify a token
// @Description Validate a posted platform token and return the identity it resolves to
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Token to verify"
// @Success 200 {object} map[string]interface{} "Verification result"
// @Failure 400 {object} ErrorResponse "Token missing"
// @Failure 401 {object} ErrorResponse "Token invalid"
// @Failure 503 {object} ErrorResponse "Authentication service unavailable"
// @Router /api/auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "required parameter missing", "message": "token is required"})
		return
	}

	identity, err := h.validator.Validate(req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthServiceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication service unavailable"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "identity": identity})
}

// SignOut handles DELETE /api/auth/sign_out
// @Summary Sign out
// @Description Clear the session and token cookies
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Signed out"
// @Router /api/auth/sign_out [delete]
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.sessions.Clear(c)
	c.SetCookie(auth.TokenCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"signed_out": true})
}

// MockToken handles POST /auth/mock_token, available outside production only
// @Summary Mint a mock token
// @Description Create a base64 mock token for development and testing
// @Tags auth
// @Accept json
// @Produce json
// @Param overrides body map[string]interface{} false "Identity field overrides"
// @Success 200 {object} map[string]string "Mock token"
// @Failure 404 "Not available in production"
// @Router /auth/mock_token [post]
func (h *AuthHandler) MockToken(c *gin.Context) {
	if h.cfg.IsProduction() {
		c.Status(http.StatusNotFound)
		return
	}

	overrides := map[string]interface{}{}
	// An empty body is fine; overrides stay empty.
	_ = c.ShouldBindJSON(&overrides)

	token := auth.CreateMockToken(h.cfg, overrides)
	if token == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

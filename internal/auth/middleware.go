package auth

import (
	"errors"
	"net/http"
	"strings"

	"crm-dashboard-backend/internal/config"
	"crm-dashboard-backend/internal/database/models"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys bound by the middleware for the request lifetime
const (
	ContextUserKey         = "current_user"
	ContextOrganizationKey = "current_organization"
	ContextTokenKey        = "platform_token"
)

// TokenCookieName is the plain platform-token cookie set by the frontend
const TokenCookieName = "voipappz_token"

// Middleware authenticates inbound requests: it extracts the bearer token,
// validates it, syncs the identity into the local store and binds the
// current user and organization to the gin context.
type Middleware struct {
	cfg       *config.Config
	validator *TokenValidator
	syncer    *UserSyncService
	sessions  *SessionStore
	log       *logger.Logger
}

// NewMiddleware creates the authentication middleware
func NewMiddleware(cfg *config.Config, validator *TokenValidator, syncer *UserSyncService, sessions *SessionStore) *Middleware {
	return &Middleware{
		cfg:       cfg,
		validator: validator,
		syncer:    syncer,
		sessions:  sessions,
		log:       logger.New().WithField("component", "auth_middleware"),
	}
}

// Authenticate validates the request credential and binds identity context.
// Token sources in priority order: Authorization header, token cookie,
// signed session slot, and (non-production only) the token query parameter.
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.ExtractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		identity, err := m.validator.Validate(token)
		if err != nil {
			if errors.Is(err, apperrors.ErrAuthServiceUnavailable) {
				// Dependency outage: keep stored credentials, the token may
				// still be good.
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication service unavailable"})
				c.Abort()
				return
			}
			// A rejected credential is dead everywhere it may be stored; a
			// stale cookie left behind would re-present it on every request.
			m.sessions.Clear(c)
			c.SetCookie(TokenCookieName, "", -1, "/", "", m.cfg.IsProduction(), true)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := m.syncer.Sync(identity, nil)
		if err != nil {
			m.log.WithField("voipappz_user_id", identity.ExternalUserID).
				Errorf("identity sync failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync user"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		if user.Organization != nil {
			c.Set(ContextOrganizationKey, user.Organization)
		}
		c.Set(ContextTokenKey, token)
		c.Set("user_id", user.ID.String())
		c.Set("email", user.Email)

		c.Next()
	}
}

// ExtractToken pulls the bearer token from the request without validating it
func (m *Middleware) ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader && token != "" {
			return token
		}
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	if token := m.sessions.Read(c); token != "" {
		return token
	}

	if !m.cfg.IsProduction() {
		if token := c.Query("token"); token != "" {
			return token
		}
	}

	return ""
}

// RequirePermission gates a handler on a named permission string
func (m *Middleware) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !Authorize(user, permission) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOrganization gates a handler on resolved tenant context. The
// failure is distinct from an authentication failure: the caller is known
// but belongs to no organization.
func (m *Middleware) RequireOrganization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentOrganization(c) == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "organization required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Authorize is the single permission decision: owners hold every
// permission, everyone else needs the named string in their permission list.
func Authorize(user *models.User, permission string) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleOwner {
		return true
	}
	return user.Permissions.Contains(permission)
}

// CurrentUser returns the authenticated user bound to the request, nil if
// the request is unauthenticated
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// CurrentOrganization returns the request's tenant, nil when the user has none
func CurrentOrganization(c *gin.Context) *models.Organization {
	value, exists := c.Get(ContextOrganizationKey)
	if !exists {
		return nil
	}
	org, ok := value.(*models.Organization)
	if !ok {
		return nil
	}
	return org
}

// CurrentToken returns the raw platform token bound to the request
func CurrentToken(c *gin.Context) string {
	value, exists := c.Get(ContextTokenKey)
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}

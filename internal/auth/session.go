package auth

import (
	"net/http"
	"time"

	"crm-dashboard-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the signed server-side session slot. It carries the
// platform token between browser requests so the frontend never has to hold
// it in script-accessible storage.
const SessionCookieName = "crm_session"

const sessionLifetime = 24 * time.Hour

// sessionClaims wraps the platform token in a signed JWT
type sessionClaims struct {
	PlatformToken string `json:"platform_token"`
	jwt.RegisteredClaims
}

// SessionStore signs and reads the session cookie
type SessionStore struct {
	secret []byte
	secure bool
}

// NewSessionStore creates a session store signing with the configured secret
func NewSessionStore(cfg *config.Config) *SessionStore {
	return &SessionStore{
		secret: []byte(cfg.JWTSecret),
		secure: cfg.IsProduction(),
	}
}

// Write stores the platform token in a signed, HTTP-only session cookie
func (s *SessionStore) Write(c *gin.Context, platformToken string) error {
	now := time.Now()
	claims := sessionClaims{
		PlatformToken: platformToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, signed, int(sessionLifetime.Seconds()), "/", "", s.secure, true)
	return nil
}

// Read returns the platform token from the session cookie, "" when the
// cookie is absent, expired or tampered with
func (s *SessionStore) Read(c *gin.Context) string {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return ""
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	return claims.PlatformToken
}

// Clear removes the session cookie
func (s *SessionStore) Clear(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", s.secure, true)
}

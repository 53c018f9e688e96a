// Package session implements the signed client-side session token. The
// identity lives in an HS256 JWT carried in an HTTP-only cookie; the
// server keeps no session state.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Cookie names. User and admin sessions are independent, like the two
// session keys of the original application.
const (
	UserCookie  = "sessija"
	AdminCookie = "admin_sessija"
)

// Claims is the session token payload.
type Claims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens.
type Manager struct {
	secretKey  []byte
	expireTime time.Duration
}

// NewManager creates a session manager.
func NewManager(secretKey string, expireTime time.Duration) *Manager {
	return &Manager{
		secretKey:  []byte(secretKey),
		expireTime: expireTime,
	}
}

// Issue signs a session token for the given identity.
func (m *Manager) Issue(username string, admin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expireTime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify parses and validates a session token.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid session token")
}

// SetCookie attaches a session token to the response.
func (m *Manager) SetCookie(c *gin.Context, name, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, int(m.expireTime.Seconds()), "/", "", false, true)
}

// ClearCookie removes a session cookie. Clearing an absent cookie is
// harmless, which makes logout idempotent.
func ClearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}

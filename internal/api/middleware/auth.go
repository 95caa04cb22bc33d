package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

const (
	userKey   = "user"
	claimsKey = "claims"
)

// Authenticator resolves an access token to its user.
type Authenticator interface {
	Authenticate(token string) (*models.User, *services.Claims, error)
}

// AuthMiddleware requires a valid access token, taken from the Authorization
// header or, for websocket upgrades, the token query parameter.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		user, claims, err := auth.Authenticate(token)
		if err != nil {
			GetRequestLogger(c).WithError(err).Debug("rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(userKey, user)
		c.Set(claimsKey, claims)
		c.Set("logger", GetRequestLogger(c).WithField("user_id", user.ID))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	// browsers cannot set headers on a websocket handshake
	if websocket.IsWebSocketUpgrade(c.Request) {
		return c.Query("token")
	}
	return ""
}

// CurrentUser returns the authenticated user, or nil outside AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// CurrentClaims returns the claims of the access token in use.
func CurrentClaims(c *gin.Context) *services.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*services.Claims); ok {
			return claims
		}
	}
	return nil
}

// Require aborts with 403 unless allow accepts the current user.
func Require(allow func(*models.User) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !allow(u) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return Require(func(u *models.User) bool { return u.IsAdmin || u.IsSuperuser })
}

// RequireOperations admits superusers, admins and the operations staff.
func RequireOperations() gin.HandlerFunc {
	return Require((*models.User).HasFullOperationsAccess)
}

func RequireSac() gin.HandlerFunc {
	return Require(func(u *models.User) bool { return u.IsSac })
}

package middleware

import (
	"net/http"
	"strings"

	"festival_backend/internal/infrastructure/auth"
	"festival_backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ClaimsKey     = "auth_claims"
	UserIDKey     = "auth_user_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// Authenticate stores the caller's claims when a valid bearer token is sent.
// Requests without one continue anonymously; handlers decide what that means.
func Authenticate(jwtService *auth.JWTService, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("auth")
	return func(c *gin.Context) {
		if claims, err := parseBearer(c, jwtService); err == nil {
			setClaims(c, claims)
		} else if c.GetHeader(AuthHeaderKey) != "" {
			log.Debug("ignoring invalid bearer token", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		c.Next()
	}
}

// RequireAuth rejects requests that do not carry a valid bearer token.
func RequireAuth(jwtService *auth.JWTService, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("auth")
	return func(c *gin.Context) {
		if _, ok := c.Get(ClaimsKey); ok {
			c.Next()
			return
		}
		claims, err := parseBearer(c, jwtService)
		if err != nil {
			log.Warn("authentication failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// RequireRole lets through only callers whose token carries role. It must run
// after RequireAuth; requests without claims are treated as unauthenticated.
func RequireRole(role string, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("auth")
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if claims.Role != role {
			log.Warn("role check failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("user_id", claims.UserID),
				zap.String("role", claims.Role))
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// Claims returns the validated token claims, or nil for anonymous requests.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func parseBearer(c *gin.Context, jwtService *auth.JWTService) (*auth.Claims, error) {
	if jwtService == nil {
		return nil, auth.ErrNoSecret
	}
	header := c.GetHeader(AuthHeaderKey)
	if !strings.HasPrefix(header, BearerPrefix) {
		return nil, auth.ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	if token == "" {
		return nil, auth.ErrInvalidToken
	}
	return jwtService.Validate(token)
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ClaimsKey, claims)
	c.Set(UserIDKey, claims.UserID)
}

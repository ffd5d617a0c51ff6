package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth context keys
const (
	AuthUserIDKey = "auth_user_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// AuthConfig holds configuration for the auth middleware. Tokens are
// issued by the upstream identity provider; this service only validates
// the signature and extracts the user ID claim.
type AuthConfig struct {
	// JWTSecret is the shared HMAC signing secret.
	JWTSecret string
	// HeaderFallback accepts an X-User-ID header when no bearer token is
	// present. Enabled only outside production.
	HeaderFallback bool
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// userClaims is the token payload the identity provider issues.
type userClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Auth creates the authentication middleware.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		userID, err := authenticate(c, cfg)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Authentication failed",
					zap.Error(err),
					zap.String("path", path),
				)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		c.Set(AuthUserIDKey, userID.String())
		c.Next()
	}
}

func authenticate(c *gin.Context, cfg AuthConfig) (uuid.UUID, error) {
	authHeader := c.GetHeader(AuthHeaderKey)
	if authHeader == "" {
		if cfg.HeaderFallback {
			if raw := c.GetHeader("X-User-ID"); raw != "" {
				return uuid.Parse(raw)
			}
		}
		return uuid.Nil, ErrMissingToken
	}

	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return uuid.Nil, ErrInvalidToken
	}
	tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
	if tokenString == "" {
		return uuid.Nil, ErrMissingToken
	}

	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	raw := claims.UserID
	if raw == "" {
		raw = claims.Subject
	}
	return uuid.Parse(raw)
}

// GetAuthUserID retrieves the authenticated user ID from gin.Context.
func GetAuthUserID(c *gin.Context) (uuid.UUID, error) {
	if raw, exists := c.Get(AuthUserIDKey); exists {
		if id, ok := raw.(string); ok {
			return uuid.Parse(id)
		}
	}
	return uuid.Nil, errors.New("user ID not found in context")
}

package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/carbonkhet/carbonkhet/internal/pkg/jwt"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/internal/utils"
)

// Context keys set by the JWT middleware
const (
	ContextUserID   = "user_id"
	ContextUserType = "user_type"
)

// JWTAuthMiddleware creates a middleware for JWT bearer authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserType, claims.UserType)

			return next(c)
		}
	}
}

// RequireUserType gates a route to a single user type. Must run after
// JWTAuthMiddleware.
func RequireUserType(userType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if t, ok := c.Get(ContextUserType).(string); !ok || t != userType {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"strings"

	"gsale/internal/delivery/http/response"
	"gsale/internal/domain/entity"
	"gsale/internal/domain/service"
	"gsale/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Echo context keys set by Authenticate.
const (
	keyUserID = "userID"
	keyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Refresh tokens only rotate sessions, they never grant API access.
		if claims.Type != auth.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token is not an access token")
		}

		if claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
		}

		// Set user info on the context for handlers to use
		c.Set(keyUserID, claims.UserID)
		c.Set(keyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			// Admins pass every role gate.
			if role != string(requiredRole) && role != string(entity.RoleAdmin) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user ID placed on the context by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetRole extracts the authenticated user's role placed on the context by Authenticate.
func GetRole(c echo.Context) (string, bool) {
	role, ok := c.Get(keyRole).(string)

	return role, ok
}

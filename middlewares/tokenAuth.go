package middlewares

import (
	"ClinicDesk/utils"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKey is a private key type for staff details stored on the request
// context.
type contextKey string

const (
	staffIDKey   contextKey = "staffID"
	staffRoleKey contextKey = "staffRole"
)

// StaffAuthMiddleware validates the desk session token and stores the staff
// identity on the request context. The token comes from the accessToken
// cookie set at login, with a query-parameter fallback for tools that cannot
// carry cookies.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("accessToken")
		if err != nil || token == "" {
			token = c.Query("accessToken")
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token, utils.RoleAdmin, utils.RoleRegistrar)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), staffIDKey, claims.UserID)
		ctx = context.WithValue(ctx, staffRoleKey, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole restricts a route group to staff holding one of the given
// roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := StaffRoleFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Staff role not found in context"})
			c.Abort()
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
		c.Abort()
	}
}

// StaffIDFromContext retrieves the authenticated staff ID from the context.
func StaffIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(staffIDKey).(int64)
	if !ok {
		return 0, errors.New("staff ID not found in context")
	}
	return id, nil
}

// StaffRoleFromContext retrieves the authenticated staff role from the
// context.
func StaffRoleFromContext(ctx context.Context) (string, error) {
	role, ok := ctx.Value(staffRoleKey).(string)
	if !ok {
		return "", errors.New("staff role not found in context")
	}
	return role, nil
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-ledger/models"
	"hotel-ledger/utils"
)

const userContextKey = "userContext"

// Auth validates the bearer token and places the caller's UserContext on the
// gin context. The hotel scope and role come from the token; no DB lookup
// runs per request.
func Auth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.missingToken", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidAuthHeader", "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidOrExpiredToken", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userContextKey, models.UserContext{
			UserID:   claims.UserID,
			HotelID:  claims.HotelID,
			Email:    claims.Email,
			FullName: claims.FullName,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			utils.JSONError(c, http.StatusForbidden, "error.adminOnly", "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller set by Auth.
func CurrentUser(c *gin.Context) (models.UserContext, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return models.UserContext{}, false
	}
	user, ok := v.(models.UserContext)
	return user, ok
}

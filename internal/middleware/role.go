package middleware

import (
	"net/http"

	"fieldbooking/internal/domain"
	"fieldbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through only when the authenticated user's
// role is one of roles. It must run after JWTAuth.
func RequireRoles(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			unauthorized(c, "UNAUTHORIZED", "Not authenticated")
			return
		}

		if !user.Role.In(roles...) {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Not authorized")
			return
		}

		c.Next()
	}
}

// StaffOnly allows admin, manager and owner.
func StaffOnly() gin.HandlerFunc {
	return RequireRoles(domain.StaffRoles...)
}

package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"fieldbooking/internal/domain"
	jwtsvc "fieldbooking/internal/pkg/jwt"
	"fieldbooking/internal/pkg/response"
	"fieldbooking/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	ctxUser   = "user"
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// UserLookup resolves a token subject to the stored user.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

func unauthorized(c *gin.Context, code, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Abort(c, http.StatusUnauthorized, code, message)
}

// JWTAuth validates the bearer token, loads its user and stores it in the
// context. Tokens issued before the user's last logout are rejected.
func JWTAuth(jwt *jwtsvc.Service, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			unauthorized(c, "AUTH_HEADER_MISSING", "Not authenticated")
			return
		}

		scheme, tokenStr, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			unauthorized(c, "INVALID_AUTH_FORMAT", "Invalid authorization header")
			return
		}
		tokenStr = strings.TrimSpace(tokenStr)
		if tokenStr == "" {
			unauthorized(c, "INVALID_AUTH_FORMAT", "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			if repository.IsNotFound(err) {
				unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
				return
			}
			log.Printf("auth: user lookup failed subject=%s error=%q", claims.Subject, err)
			response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
			return
		}

		if revokedByLogout(claims, user) {
			unauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
			return
		}

		c.Set(ctxUser, user)
		c.Set(ctxUserID, user.ID)
		c.Set(ctxRole, string(user.Role))
		c.Next()
	}
}

func revokedByLogout(claims *jwtsvc.Claims, user *domain.User) bool {
	if user.LastLogout == nil {
		return false
	}
	if claims.IssuedAt == nil {
		return true
	}
	return claims.IssuedAt.Time.Before(user.LastLogout.Truncate(time.Millisecond))
}

// CurrentUser returns the user stored by JWTAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok && u != nil
}

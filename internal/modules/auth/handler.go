package auth

import (
	"errors"
	"log"
	"net/http"

	"fieldbooking/internal/middleware"
	"fieldbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages staff authentication endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/token", h.Token)
}

// RegisterProtectedRoutes expects JWTAuth to run first.
func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/logout", h.Logout)
	r.GET("/users/me", h.GetMe)
}

func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	token, _, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")
			return
		}
		log.Printf("auth: login failed error=%q", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *Handler) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
		return
	}

	if err := h.service.Logout(c.Request.Context(), user); err != nil {
		log.Printf("auth: logout failed user_id=%d error=%q", user.ID, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	response.Message(c, http.StatusOK, "Successfully logged out")
}

func (h *Handler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(user))
}

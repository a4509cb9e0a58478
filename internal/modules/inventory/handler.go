package inventory

import (
	"errors"
	"log"
	"net/http"

	"fieldbooking/internal/middleware"
	"fieldbooking/internal/pkg/response"
	"fieldbooking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the inventory endpoints on a group that already
// requires staff; writers further restricts who may record a check.
func (h *Handler) RegisterAdminRoutes(r gin.IRoutes, writers gin.HandlerFunc) {
	r.POST("/inventory", writers, h.Create)
	r.GET("/inventory/latest", h.Latest)
}

func (h *Handler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
		return
	}

	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	inv, err := h.service.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid inventory data")
			return
		}
		log.Printf("inventory: create failed user_id=%d error=%q", user.ID, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, toInventoryResponse(inv))
}

func (h *Handler) Latest(c *gin.Context) {
	inv, err := h.service.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoInventoryFound) {
			response.Error(c, http.StatusNotFound, "INVENTORY_NOT_FOUND", "No inventory records found")
			return
		}
		log.Printf("inventory: latest failed error=%q", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, toInventoryResponse(inv))
}

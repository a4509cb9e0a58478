package catalog

import (
	"log"
	"net/http"

	"fieldbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Root)
	r.GET("/time-slots", h.ListTimeSlots)
}

var serviceDescription = gin.H{
	"message":       "Welcome to Soccer Field Booking System API",
	"documentation": "/",
	"available_endpoints": gin.H{
		"public": []string{
			"GET /time-slots - View all available time slots",
			"POST /bookings - Create a new booking",
		},
		"authentication": []string{
			"POST /token - Login to get access token",
			"POST /logout - Invalidate issued tokens (requires auth)",
		},
		"admin": []string{
			"GET /admin/bookings - View all bookings (requires auth)",
			"PUT /admin/bookings/{booking_id}/status - Update booking status (requires auth)",
		},
		"inventory": []string{
			"POST /admin/inventory - Create inventory check (requires auth)",
			"GET /admin/inventory/latest - View latest inventory (requires auth)",
		},
	},
}

// Root returns the static service description.
func (h *Handler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, serviceDescription)
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	slots, err := h.service.ListTimeSlots(c.Request.Context())
	if err != nil {
		log.Printf("catalog: list time slots failed error=%q", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load time slots")
		return
	}
	response.Success(c, http.StatusOK, slots)
}

package booking

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fieldbooking/internal/domain"
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

// RegisterPublicRoutes mounts customer endpoints.
func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/bookings", h.CreateBooking)
}

// RegisterAdminRoutes mounts staff endpoints; the caller applies auth.
func (h *Handler) RegisterAdminRoutes(r gin.IRoutes) {
	r.GET("/bookings", h.ListBookings)
	r.PUT("/bookings/:id/status", h.UpdateStatus)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toBookingResponse(b))
}

func (h *Handler) ListBookings(c *gin.Context) {
	skip, err1 := queryInt(c, "skip", 0)
	limit, err2 := queryInt(c, "limit", DefaultLimit)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "skip and limit must be integers")
		return
	}

	list, err := h.service.ListBookings(c.Request.Context(), skip, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.FieldErrors(err))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status)); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Booking status updated successfully")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
	case errors.Is(err, ErrInvalidPagination):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "skip must be >= 0 and limit must be > 0")
	case errors.Is(err, ErrTimeSlotNotFound):
		response.Error(c, http.StatusNotFound, "TIME_SLOT_NOT_FOUND", "Time slot not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrSlotAlreadyBooked):
		response.Error(c, http.StatusBadRequest, "BOOKING_CONFLICT", "This time slot is already booked for the selected date")
	default:
		log.Printf("booking: request failed method=%s path=%s error=%q", c.Request.Method, c.Request.URL.Path, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

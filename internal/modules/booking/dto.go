package booking

import (
	"time"

	"fieldbooking/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	CustomerName string  `json:"customer_name" binding:"required,max=255"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required,max=32"`
	BookingDate  string  `json:"booking_date" binding:"required,datetime=2006-01-02"`
	TimeSlotID   int64   `json:"time_slot_id" binding:"required,gt=0"`
	Notes        *string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

type BookingResponse struct {
	ID           int64            `json:"id"`
	CustomerName string           `json:"customer_name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	BookingDate  string           `json:"booking_date"`
	TimeSlotID   int64            `json:"time_slot_id"`
	Notes        *string          `json:"notes"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	TimeSlot     *domain.TimeSlot `json:"time_slot"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		BookingDate:  b.BookingDate.Format(dateLayout),
		TimeSlotID:   b.TimeSlotID,
		Notes:        b.Notes,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		TimeSlot:     b.TimeSlot,
	}
}

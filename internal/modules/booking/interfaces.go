package booking

import (
	"context"
	"time"

	"fieldbooking/internal/domain"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, offset, limit int) ([]domain.Booking, error)
	HasActiveBooking(ctx context.Context, date time.Time, timeSlotID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TimeSlotRepository defines the interface for time slot lookups
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

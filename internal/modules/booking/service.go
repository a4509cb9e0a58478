package booking

import (
	"context"
	"strings"
	"time"

	"fieldbooking/internal/domain"
	"fieldbooking/internal/pkg/sanitizer"
	"fieldbooking/internal/repository"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type Service struct {
	bookings    BookingRepository
	slots       TimeSlotRepository
	phoneRegion string
}

func NewService(bookings BookingRepository, slots TimeSlotRepository, phoneRegion string) *Service {
	return &Service{
		bookings:    bookings,
		slots:       slots,
		phoneRegion: phoneRegion,
	}
}

// CreateBooking stores a new Booked reservation. The active-booking check
// gives the common case a clean error; the unique index on
// (booking_date, time_slot_id) decides concurrent inserts.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	day, err := time.Parse(dateLayout, strings.TrimSpace(req.BookingDate))
	if err != nil {
		return nil, ErrValidation
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" || req.TimeSlotID <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.slots.GetByID(ctx, req.TimeSlotID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTimeSlotNotFound
		}
		return nil, err
	}

	taken, err := s.bookings.HasActiveBooking(ctx, day, req.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotAlreadyBooked
	}

	var notes *string
	if req.Notes != nil {
		if n := strings.TrimSpace(*req.Notes); n != "" {
			notes = &n
		}
	}

	b := &domain.Booking{
		CustomerName: name,
		Email:        strings.TrimSpace(req.Email),
		Phone:        sanitizer.NormalizePhone(req.Phone, s.phoneRegion),
		BookingDate:  day,
		TimeSlotID:   req.TimeSlotID,
		Notes:        notes,
		Status:       domain.BookingBooked,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, skip, limit int) ([]domain.Booking, error) {
	if skip < 0 || limit <= 0 {
		return nil, ErrInvalidPagination
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	out, err := s.bookings.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Booking{}
	}
	return out, nil
}

// UpdateStatus moves a booking to any status; there is no transition graph.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		switch {
		case repository.IsNotFound(err):
			return ErrBookingNotFound
		case repository.IsUniqueViolation(err):
			return ErrSlotAlreadyBooked
		}
		return err
	}
	return nil
}

package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrTimeSlotNotFound  = errors.New("time slot not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotAlreadyBooked = errors.New("time slot already booked for date")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidPagination = errors.New("invalid pagination")
)

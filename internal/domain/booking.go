package domain

import "time"

type BookingStatus string

const (
	BookingBooked      BookingStatus = "Booked"
	BookingDepositPaid BookingStatus = "Deposit Paid"
	BookingDone        BookingStatus = "Done"
	BookingRescheduled BookingStatus = "Rescheduled"
	BookingCancelled   BookingStatus = "Cancelled"
)

// ActiveBookingStatuses hold a slot for their date.
var ActiveBookingStatuses = []BookingStatus{BookingBooked, BookingDepositPaid}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingBooked, BookingDepositPaid, BookingDone, BookingRescheduled, BookingCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveBookingStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// Booking is a customer's reservation of one time slot on one calendar day.
// BookingDate is always midnight UTC.
type Booking struct {
	ID           int64         `json:"id"`
	CustomerName string        `json:"customer_name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	BookingDate  time.Time     `json:"booking_date"`
	TimeSlotID   int64         `json:"time_slot_id"`
	Notes        *string       `json:"notes,omitempty"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	TimeSlot *TimeSlot `json:"time_slot,omitempty"`
}

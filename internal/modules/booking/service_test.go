package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldbooking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b != nil {
		b.ID = 999 // simulate DB insert
		b.TimeSlot = &domain.TimeSlot{ID: b.TimeSlotID, ShiftName: "Shift 1"}
	}
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context, offset, limit int) ([]domain.Booking, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasActiveBooking(ctx context.Context, date time.Time, timeSlotID int64) (bool, error) {
	args := m.Called(ctx, date, timeSlotID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockTimeSlotRepository struct {
	mock.Mock
}

func (m *MockTimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeSlot), args.Error(1)
}

var june1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func validRequest() CreateBookingRequest {
	notes := "  bring bibs "
	return CreateBookingRequest{
		CustomerName: " Nguyen Van A ",
		Email:        "a@example.com",
		Phone:        "0912 345 678",
		BookingDate:  "2024-06-01",
		TimeSlotID:   1,
		Notes:        &notes,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSlots := new(MockTimeSlotRepository)

	mockSlots.On("GetByID", mock.Anything, int64(1)).Return(&domain.TimeSlot{ID: 1}, nil)
	mockBookings.On("HasActiveBooking", mock.Anything, june1, int64(1)).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingBooked && b.BookingDate.Equal(june1)
	})).Return(nil)

	service := NewService(mockBookings, mockSlots, "VN")

	booking, err := service.CreateBooking(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(999), booking.ID)
	assert.Equal(t, domain.BookingBooked, booking.Status)
	assert.Equal(t, "Nguyen Van A", booking.CustomerName)
	assert.Equal(t, "+84912345678", booking.Phone)
	require.NotNil(t, booking.Notes)
	assert.Equal(t, "bring bibs", *booking.Notes)
	require.NotNil(t, booking.TimeSlot)
	mockBookings.AssertExpectations(t)
	mockSlots.AssertExpectations(t)
}

func TestService_CreateBooking_UnknownSlot(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSlots := new(MockTimeSlotRepository)
	mockSlots.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockSlots, "VN")
	_, err := service.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTimeSlotNotFound)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_AlreadyBooked(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSlots := new(MockTimeSlotRepository)
	mockSlots.On("GetByID", mock.Anything, int64(1)).Return(&domain.TimeSlot{ID: 1}, nil)
	mockBookings.On("HasActiveBooking", mock.Anything, june1, int64(1)).Return(true, nil)

	service := NewService(mockBookings, mockSlots, "VN")
	_, err := service.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_LostRaceIsConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSlots := new(MockTimeSlotRepository)
	mockSlots.On("GetByID", mock.Anything, int64(1)).Return(&domain.TimeSlot{ID: 1}, nil)
	mockBookings.On("HasActiveBooking", mock.Anything, june1, int64(1)).Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_active_slot"})

	service := NewService(mockBookings, mockSlots, "VN")
	_, err := service.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestService_CreateBooking_BadDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockTimeSlotRepository), "VN")

	req := validRequest()
	req.BookingDate = "01/06/2024"
	_, err := service.CreateBooking(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_StorageError(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockSlots := new(MockTimeSlotRepository)
	boom := errors.New("connection reset")
	mockSlots.On("GetByID", mock.Anything, int64(1)).Return(nil, boom)

	service := NewService(mockBookings, mockSlots, "VN")
	_, err := service.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, boom)
}

func TestService_ListBookings(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("List", mock.Anything, 0, MaxLimit).Return([]domain.Booking{{ID: 1}}, nil)
	mockBookings.On("List", mock.Anything, 5, 10).Return(nil, nil)

	service := NewService(mockBookings, new(MockTimeSlotRepository), "VN")

	list, err := service.ListBookings(context.Background(), 0, 5000)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = service.ListBookings(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = service.ListBookings(context.Background(), -1, 10)
	assert.ErrorIs(t, err, ErrInvalidPagination)
	_, err = service.ListBookings(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestService_UpdateStatus(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingCancelled).Return(nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(2), domain.BookingDone).Return(gorm.ErrRecordNotFound)
	mockBookings.On("UpdateStatus", mock.Anything, int64(3), domain.BookingBooked).
		Return(&pgconn.PgError{Code: "23505"})

	service := NewService(mockBookings, new(MockTimeSlotRepository), "VN")
	ctx := context.Background()

	assert.NoError(t, service.UpdateStatus(ctx, 1, domain.BookingCancelled))
	assert.ErrorIs(t, service.UpdateStatus(ctx, 2, domain.BookingDone), ErrBookingNotFound)
	assert.ErrorIs(t, service.UpdateStatus(ctx, 3, domain.BookingBooked), ErrSlotAlreadyBooked)
	assert.ErrorIs(t, service.UpdateStatus(ctx, 4, domain.BookingStatus("Lost")), ErrInvalidStatus)
}

func TestService_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	all := []domain.BookingStatus{
		domain.BookingBooked, domain.BookingDepositPaid, domain.BookingDone,
		domain.BookingRescheduled, domain.BookingCancelled,
	}

	mockBookings := new(MockBookingRepository)
	mockBookings.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil)
	service := NewService(mockBookings, new(MockTimeSlotRepository), "VN")

	for _, from := range all {
		for _, to := range all {
			assert.NoError(t, service.UpdateStatus(context.Background(), 7, to), "%s -> %s", from, to)
		}
	}
}

package repository

import (
	"context"
	"time"

	"fieldbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64          `gorm:"column:id;primaryKey"`
	CustomerName string         `gorm:"column:customer_name;size:255;index;not null"`
	Email        string         `gorm:"column:email;size:255;not null"`
	Phone        string         `gorm:"column:phone;size:32;not null"`
	BookingDate  time.Time      `gorm:"column:booking_date;type:date;index;not null"`
	TimeSlotID   int64          `gorm:"column:time_slot_id;not null"`
	Notes        *string        `gorm:"column:notes;type:text"`
	Status       string         `gorm:"column:status;size:32;not null;default:Booked"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	TimeSlot     *timeSlotModel `gorm:"foreignKey:TimeSlotID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:           m.ID,
		CustomerName: m.CustomerName,
		Email:        m.Email,
		Phone:        m.Phone,
		BookingDate:  DateOnly(m.BookingDate),
		TimeSlotID:   m.TimeSlotID,
		Notes:        m.Notes,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.TimeSlot != nil && m.TimeSlot.ID != 0 {
		b.TimeSlot = toDomainTimeSlot(*m.TimeSlot)
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		BookingDate:  DateOnly(b.BookingDate),
		TimeSlotID:   b.TimeSlotID,
		Notes:        b.Notes,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// DateOnly truncates t to midnight UTC of its calendar day, which is the
// form every date column is written and compared in.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeStatuses() []string {
	out := make([]string, 0, len(domain.ActiveBookingStatuses))
	for _, s := range domain.ActiveBookingStatuses {
		out = append(out, string(s))
	}
	return out
}

// Create inserts b and reloads it together with its time slot.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*b = *created
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Joins("TimeSlot").
		Where("bookings.id = ?", id).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// List returns bookings in insertion order.
func (r *BookingRepository) List(ctx context.Context, offset, limit int) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Joins("TimeSlot").
		Order("bookings.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// HasActiveBooking reports whether the slot is held by a Booked or
// Deposit Paid booking on date.
func (r *BookingRepository) HasActiveBooking(ctx context.Context, date time.Time, timeSlotID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booking_date = ? AND time_slot_id = ? AND status IN ?", DateOnly(date), timeSlotID, activeStatuses()).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// UpdateStatus returns gorm.ErrRecordNotFound when no booking has id.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

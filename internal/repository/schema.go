package repository

import (
	"context"
	"fmt"
	"strings"

	"fieldbooking/internal/domain"

	"gorm.io/gorm"
)

const activeSlotIndex = "idx_bookings_active_slot"

// Migrate creates or updates all tables plus the partial unique index that
// keeps a slot from holding two active bookings on the same date.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(
		&timeSlotModel{},
		&userModel{},
		&bookingModel{},
		&inventoryModel{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	active := make([]string, 0, len(domain.ActiveBookingStatuses))
	for _, s := range domain.ActiveBookingStatuses {
		active = append(active, "'"+string(s)+"'")
	}
	q := fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON bookings (booking_date, time_slot_id) WHERE status IN (%s)",
		activeSlotIndex, strings.Join(active, ", "),
	)
	if err := db.Exec(q).Error; err != nil {
		return fmt.Errorf("create %s: %w", activeSlotIndex, err)
	}
	return nil
}

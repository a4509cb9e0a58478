package database

import (
	"context"
	"log"

	"fieldbooking/internal/domain"
)

// DefaultTimeSlots is the fixed daily shift table loaded on startup.
var DefaultTimeSlots = []domain.TimeSlot{
	{ShiftName: "Shift 1", StartTime: "06:00", EndTime: "07:30", Price: 500000},
	{ShiftName: "Shift 2", StartTime: "07:30", EndTime: "09:00", Price: 500000},
	{ShiftName: "Shift 3", StartTime: "09:00", EndTime: "10:30", Price: 400000},
	{ShiftName: "Shift 4", StartTime: "10:30", EndTime: "12:00", Price: 400000},
	{ShiftName: "Shift 5", StartTime: "13:00", EndTime: "14:30", Price: 400000},
	{ShiftName: "Shift 6", StartTime: "14:30", EndTime: "16:00", Price: 400000},
	{ShiftName: "Shift 7", StartTime: "16:00", EndTime: "17:30", Price: 600000},
	{ShiftName: "Shift 8", StartTime: "18:30", EndTime: "20:00", Price: 800000},
	{ShiftName: "Shift 9", StartTime: "20:00", EndTime: "21:30", Price: 800000},
	{ShiftName: "Shift 10", StartTime: "21:30", EndTime: "23:00", Price: 800000},
}

type TimeSlotSeeder interface {
	CreateIfAbsent(ctx context.Context, slot *domain.TimeSlot) (bool, error)
}

// SeedTimeSlots inserts every default slot whose shift name is not stored
// yet. Existing rows are never updated.
func SeedTimeSlots(ctx context.Context, slots TimeSlotSeeder) (int, error) {
	created := 0
	for _, def := range DefaultTimeSlots {
		slot := def
		ok, err := slots.CreateIfAbsent(ctx, &slot)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	log.Printf("time slots seeded: created=%d total_defaults=%d", created, len(DefaultTimeSlots))
	return created, nil
}

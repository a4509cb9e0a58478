package main

import (
	"context"
	"log"

	"fieldbooking/internal/config"
	"fieldbooking/internal/database"
	"fieldbooking/internal/repository"
)

// Creates the schema and loads the default time slots without starting the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	slots := repository.NewTimeSlotRepository(db)
	created, err := database.SeedTimeSlots(ctx, slots)
	if err != nil {
		log.Fatalf("seed time slots failed: %v", err)
	}
	total, err := slots.Count(ctx)
	if err != nil {
		log.Fatalf("count time slots failed: %v", err)
	}

	log.Printf("migrate completed: time_slots_created=%d time_slots_total=%d", created, total)
}

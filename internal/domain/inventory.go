package domain

import "time"

// Inventory is a point-in-time equipment count recorded by a staff user.
type Inventory struct {
	ID        int64     `json:"id"`
	Balls     int       `json:"balls"`
	Shoes     int       `json:"shoes"`
	Jerseys   int       `json:"jerseys"`
	Gloves    int       `json:"gloves"`
	CheckDate time.Time `json:"check_date"`
	UpdatedBy int64     `json:"updated_by"`
}

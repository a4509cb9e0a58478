package domain

// TimeSlot is a fixed daily window ("HH:MM"-"HH:MM") with a price.
type TimeSlot struct {
	ID        int64   `json:"id"`
	ShiftName string  `json:"shift_name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
}

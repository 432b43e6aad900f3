package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	DefaultMaxBookings = 1
	MinMaxBookings     = 1
	MaxMaxBookings     = 20
	MaxNotesLength     = 500
)

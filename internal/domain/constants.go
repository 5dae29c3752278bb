package domain

import "time"

// Default configuration values
const (
	DefaultOpenHour            = 9
	DefaultCloseHour           = 18
	DefaultSlotIntervalMinutes = 30
	DefaultHoldTTL             = 5 * time.Minute
	DefaultSweepInterval       = 60 * time.Second
	DefaultHorizonDays         = 30
	DefaultSessionTTL          = 30 * time.Minute
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 240
	MinDurationMinutes     = 5
	MaxDurationMinutes     = 480 // 8 hours
	MaxHorizonDays         = 365
	MaxNotesLength         = 500
	MaxNameLength          = 100
	MaxServicesPerBooking  = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, которые не занимают слот
// Используется при выборке бронирований для проверки конфликтов
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
}

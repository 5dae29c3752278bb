package domain

import (
	"time"

	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// ReservationStatus represents the status of a committed reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation represents a committed appointment persisted in the store.
// A reservation blocks its time interval for as long as it is active.
// Temporary holds are a separate in-memory concept, see Hold.
type Reservation struct {
	ID              int64
	Date            time.Time // calendar date, no time component
	StartTime       types.TimeString
	DurationMinutes int
	Status          ReservationStatus

	// Customer contact details captured at confirmation
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         *string

	// Denormalized data for history
	ServiceNames string // comma-separated list of booked services
	TotalPrice   float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// Interval returns the occupied time interval of the reservation
func (r *Reservation) Interval() TimeInterval {
	return TimeInterval{
		Start:           r.StartTime,
		DurationMinutes: r.DurationMinutes,
	}
}

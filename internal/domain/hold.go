package domain

import (
	"time"

	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Hold represents a temporary, session-scoped claim on a slot while the
// customer completes the booking form. A hold obstructs new holds and
// availability queries but is never a source of truth for confirmed
// appointments - that role belongs to committed reservations only.
//
// State machine per hold: active -> (expired | released | promoted).
// All terminal transitions are final; a dead hold is never resurrected.
type Hold struct {
	ID              string // uuid
	SessionID       string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ExpiresAt       time.Time
	CreatedAt       time.Time
}

// IsExpired проверяет, истек ли холд к моменту now
func (h *Hold) IsExpired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}

// Interval returns the obstructed time interval of the hold
func (h *Hold) Interval() TimeInterval {
	return TimeInterval{
		Start:           h.StartTime,
		DurationMinutes: h.DurationMinutes,
	}
}

package domain

import (
	"time"

	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// TimeSlot represents a nominal bookable start time on a calendar date.
// Slots are computed from the working hours policy and never persisted;
// two slots are equal iff date and start time match.
type TimeSlot struct {
	Date      time.Time
	StartTime types.TimeString
}

// Equal reports whether two slots describe the same date and start time
func (s TimeSlot) Equal(other TimeSlot) bool {
	return SameDay(s.Date, other.Date) && s.StartTime == other.StartTime
}

// TimeInterval is a half-open interval [Start, Start+Duration) within one day.
// Both committed reservations and temporary holds reduce to intervals for
// conflict checks.
type TimeInterval struct {
	Start           types.TimeString
	DurationMinutes int
}

// StartMinutes возвращает начало интервала в минутах с начала суток
func (i TimeInterval) StartMinutes() int {
	return i.Start.Minutes()
}

// EndMinutes возвращает конец интервала в минутах с начала суток
func (i TimeInterval) EndMinutes() int {
	return i.Start.Minutes() + i.DurationMinutes
}

// SlotAvailability пара слот + признак доступности для заданной длительности
type SlotAvailability struct {
	Slot      TimeSlot
	Available bool
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет компонент времени, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

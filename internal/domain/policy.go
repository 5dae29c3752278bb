package domain

import "time"

// WorkingHoursPolicy describes the salon's open hours, slot granularity and
// closed weekdays. Loaded once from configuration at startup and immutable
// for the lifetime of the process.
type WorkingHoursPolicy struct {
	OpenHour            int // hour of day, inclusive
	CloseHour           int // hour of day, exclusive
	SlotIntervalMinutes int
	ClosedWeekdays      map[time.Weekday]bool
}

// NewWorkingHoursPolicy создает политику рабочих часов
// closedWeekdays - номера дней недели (0 = воскресенье)
func NewWorkingHoursPolicy(openHour, closeHour, slotIntervalMinutes int, closedWeekdays []int) WorkingHoursPolicy {
	closed := make(map[time.Weekday]bool, len(closedWeekdays))
	for _, wd := range closedWeekdays {
		if wd >= 0 && wd <= 6 {
			closed[time.Weekday(wd)] = true
		}
	}
	return WorkingHoursPolicy{
		OpenHour:            openHour,
		CloseHour:           closeHour,
		SlotIntervalMinutes: slotIntervalMinutes,
		ClosedWeekdays:      closed,
	}
}

// IsValid reports whether the policy can produce any slots at all.
// An invalid policy is not an error: it simply yields empty slot sequences.
func (p WorkingHoursPolicy) IsValid() bool {
	return p.OpenHour >= 0 &&
		p.CloseHour <= 24 &&
		p.OpenHour < p.CloseHour &&
		p.SlotIntervalMinutes > 0
}

// IsClosedOn проверяет, является ли день недели выходным
func (p WorkingHoursPolicy) IsClosedOn(date time.Time) bool {
	return p.ClosedWeekdays[date.Weekday()]
}

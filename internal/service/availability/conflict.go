package availability

import (
	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Overlaps проверяет РЕАЛЬНОЕ пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И
// - конец одного СТРОГО позже начала другого
//
// Граничные случаи пересечением не считаются - бронирования "встык" допустимы:
// - Слот 10:30-11:00, бронирование 10:00-10:30 → НЕТ пересечения (граничат)
// - Слот 10:15-10:45, бронирование 10:00-10:30 → ЕСТЬ пересечение (10:15-10:30)
func Overlaps(a, b domain.TimeInterval) bool {
	return a.StartMinutes() < b.EndMinutes() && a.EndMinutes() > b.StartMinutes()
}

// IsAvailable решает, свободен ли слот начала start шириной durationMinutes
// относительно набора занятых интервалов (бронирования + холды)
//
// Неположительная длительность на этом уровне считается свободной - отсечение
// некорректных длительностей выполняется валидацией выше по стеку.
// Чистая функция, без побочных эффектов.
func IsAvailable(start types.TimeString, durationMinutes int, busy []domain.TimeInterval) bool {
	if durationMinutes <= 0 {
		return true
	}

	candidate := domain.TimeInterval{
		Start:           start,
		DurationMinutes: durationMinutes,
	}

	for _, interval := range busy {
		if Overlaps(candidate, interval) {
			return false
		}
	}

	return true
}

// BusyIntervals собирает занятые интервалы из активных бронирований
// Неактивные бронирования (отмененные, no-show) слот не блокируют
func BusyIntervals(reservations []*domain.Reservation) []domain.TimeInterval {
	intervals := make([]domain.TimeInterval, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		intervals = append(intervals, r.Interval())
	}
	return intervals
}

package availability

import (
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// GenerateSlots генерирует все номинальные слоты на дату из политики рабочих часов
//
// Слоты идут сеткой от открытия до закрытия с шагом SlotIntervalMinutes.
// Слот попадает в результат, только если его момент начала строго позже now -
// прошедшие слоты сегодняшнего дня не предлагаются.
// Для выходного дня и для невалидной политики возвращается пустой список.
//
// Функция чистая, состояние не хранится - слоты пересчитываются на каждый запрос.
func GenerateSlots(policy domain.WorkingHoursPolicy, date time.Time, now time.Time) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if !policy.IsValid() {
		return slots
	}
	if policy.IsClosedOn(date) {
		return slots
	}

	day := domain.DateOnly(date)

	for hour := policy.OpenHour; hour < policy.CloseHour; hour++ {
		for minute := 0; minute < 60; minute += policy.SlotIntervalMinutes {
			instant := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
			if !instant.After(now) {
				continue
			}

			start, err := types.NewTimeStringFromMinutes(hour*60 + minute)
			if err != nil {
				continue
			}

			slots = append(slots, domain.TimeSlot{
				Date:      day,
				StartTime: start,
			})
		}
	}

	return slots
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// AvailabilityEngine интерфейс движка доступности слотов
type AvailabilityEngine interface {
	GetAvailableSlots(ctx context.Context, date time.Time, durationMinutes int) ([]domain.SlotAvailability, error)
	Policy() domain.WorkingHoursPolicy
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

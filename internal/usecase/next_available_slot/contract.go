package next_available_slot

import (
	"context"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// AvailabilityEngine интерфейс движка доступности слотов
type AvailabilityEngine interface {
	NextAvailableSlot(ctx context.Context, fromDate time.Time, durationMinutes int, horizonDays int) (*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

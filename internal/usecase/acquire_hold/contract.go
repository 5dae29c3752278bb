package acquire_hold

import (
	"context"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// AvailabilityEngine интерфейс движка доступности слотов
type AvailabilityEngine interface {
	IsSlotAvailable(ctx context.Context, date time.Time, startTime types.TimeString, durationMinutes int) (bool, error)
	Policy() domain.WorkingHoursPolicy
}

// HoldManager интерфейс менеджера временных холдов
type HoldManager interface {
	Acquire(sessionID string, date time.Time, startTime types.TimeString, durationMinutes int, ttl time.Duration) (*domain.Hold, error)
	Get(holdID string) (*domain.Hold, error)
	Release(holdID string)
}

// SessionStore интерфейс хранилища сессий бронирования
type SessionStore interface {
	Get(sessionID string) (*domain.BookingRequest, error)
	SetSchedule(sessionID string, date time.Time, startTime types.TimeString, holdID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package availability

import (
	"context"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// ReservationStore интерфейс хранилища подтвержденных бронирований
type ReservationStore interface {
	// FetchCommittedReservations получает активные бронирования на конкретную дату
	FetchCommittedReservations(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// HoldSource интерфейс источника активных временных холдов
type HoldSource interface {
	// ActiveIntervals возвращает интервалы всех холдов на дату, активных на момент now
	ActiveIntervals(date time.Time, now time.Time) []domain.TimeInterval
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

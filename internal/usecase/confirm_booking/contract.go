package confirm_booking

import (
	"context"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// ReservationStore интерфейс хранилища подтвержденных бронирований
type ReservationStore interface {
	CreateCommittedReservation(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// HoldManager интерфейс менеджера временных холдов
type HoldManager interface {
	Get(holdID string) (*domain.Hold, error)
	Promote(holdID string)
	Release(holdID string)
}

// SessionStore интерфейс хранилища сессий бронирования
type SessionStore interface {
	Get(sessionID string) (*domain.BookingRequest, error)
	SetCustomer(sessionID string, customer domain.Customer) error
	Discard(sessionID string) (holdID string)
}

// ConflictRecorder интерфейс для метрики проигранных гонок за слот
// nil-реализация допустима
type ConflictRecorder interface {
	SlotConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

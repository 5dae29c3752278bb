package cancel_reservation

import (
	"context"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// ReservationStore интерфейс хранилища подтвержденных бронирований
type ReservationStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

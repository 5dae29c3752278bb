package get_customer_reservations

import (
	"context"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// ReservationStore интерфейс хранилища подтвержденных бронирований
type ReservationStore interface {
	GetByCustomerPhone(ctx context.Context, phone string) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package start_session

import (
	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// SessionStore интерфейс хранилища сессий бронирования
type SessionStore interface {
	Create(services []domain.ServiceSelection) (*domain.BookingRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

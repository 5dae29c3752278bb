package confirm_booking

import (
	"time"

	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// CustomerInput контактные данные клиента из запроса
type CustomerInput struct {
	Name  string
	Phone string
	Email string
	Notes *string
}

// Request модель запроса на подтверждение бронирования
type Request struct {
	SessionID string
	Customer  CustomerInput
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID   int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ServiceNames    string
	TotalPrice      float64
	CustomerName    string
	CustomerPhone   string
	CreatedAt       time.Time
}

package get_customer_reservations

import (
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Request запрос истории бронирований клиента
type Request struct {
	Phone string
}

// Reservation бронирование в истории клиента
type Reservation struct {
	ID                 int64
	Date               time.Time
	StartTime          types.TimeString
	DurationMinutes    int
	Status             domain.ReservationStatus
	ServiceNames       string
	TotalPrice         float64
	CancellationReason *string
	CreatedAt          time.Time
}

// Response список бронирований клиента, новые первыми
type Response struct {
	Reservations []Reservation
}

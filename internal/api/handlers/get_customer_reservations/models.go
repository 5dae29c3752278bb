package get_customer_reservations

import (
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	customerReservations "github.com/nvbit/SLN-SlotService/internal/usecase/get_customer_reservations"
)

// ReservationItem бронирование в ответе истории
type ReservationItem struct {
	ID                 int64     `json:"id"`
	Date               string    `json:"date"`
	StartTime          string    `json:"startTime"`
	DurationMinutes    int       `json:"durationMinutes"`
	Status             string    `json:"status"`
	ServiceNames       string    `json:"serviceNames"`
	TotalPrice         float64   `json:"totalPrice"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// GetCustomerReservationsResponse HTTP response model
type GetCustomerReservationsResponse struct {
	Reservations []ReservationItem `json:"reservations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *customerReservations.Response) *GetCustomerReservationsResponse {
	out := &GetCustomerReservationsResponse{
		Reservations: make([]ReservationItem, 0, len(resp.Reservations)),
	}
	for _, r := range resp.Reservations {
		out.Reservations = append(out.Reservations, ReservationItem{
			ID:                 r.ID,
			Date:               r.Date.Format(domain.DateFormat),
			StartTime:          r.StartTime.String(),
			DurationMinutes:    r.DurationMinutes,
			Status:             string(r.Status),
			ServiceNames:       r.ServiceNames,
			TotalPrice:         r.TotalPrice,
			CancellationReason: r.CancellationReason,
			CreatedAt:          r.CreatedAt,
		})
	}
	return out
}

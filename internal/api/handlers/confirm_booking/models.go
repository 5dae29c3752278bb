package confirm_booking

import (
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	confirmBooking "github.com/nvbit/SLN-SlotService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Customer CustomerInput `json:"customer"`
}

// CustomerInput контактные данные клиента
type CustomerInput struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email string  `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	ReservationID   int64     `json:"reservationId"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	ServiceNames    string    `json:"serviceNames"`
	TotalPrice      float64   `json:"totalPrice"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(sessionID string, req *ConfirmBookingRequest) *confirmBooking.Request {
	return &confirmBooking.Request{
		SessionID: sessionID,
		Customer: confirmBooking.CustomerInput{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
			Notes: req.Customer.Notes,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		ReservationID:   resp.ReservationID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		ServiceNames:    resp.ServiceNames,
		TotalPrice:      resp.TotalPrice,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CreatedAt:       resp.CreatedAt,
	}
}

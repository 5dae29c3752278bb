package cancel_reservation

import (
	cancelReservation "github.com/nvbit/SLN-SlotService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(reservationID int64, req *CancelReservationRequest) *cancelReservation.Request {
	return &cancelReservation.Request{
		ReservationID: reservationID,
		Reason:        req.Reason,
	}
}

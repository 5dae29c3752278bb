package start_session

import (
	"time"

	startSession "github.com/nvbit/SLN-SlotService/internal/usecase/start_session"
)

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	Services []ServiceInput `json:"services"`
}

// ServiceInput одна выбранная услуга
type ServiceInput struct {
	ServiceID       int64   `json:"serviceId"`
	SubserviceID    *int64  `json:"subserviceId,omitempty"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// StartSessionResponse HTTP response model
type StartSessionResponse struct {
	SessionID            string    `json:"sessionId"`
	TotalDurationMinutes int       `json:"totalDurationMinutes"`
	TotalPrice           float64   `json:"totalPrice"`
	ExpiresAt            time.Time `json:"expiresAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(req *StartSessionRequest) *startSession.Request {
	services := make([]startSession.ServiceInput, len(req.Services))
	for i, svc := range req.Services {
		services[i] = startSession.ServiceInput{
			ServiceID:       svc.ServiceID,
			SubserviceID:    svc.SubserviceID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}
	return &startSession.Request{Services: services}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startSession.Response) *StartSessionResponse {
	return &StartSessionResponse{
		SessionID:            resp.SessionID,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalPrice:           resp.TotalPrice,
		ExpiresAt:            resp.ExpiresAt,
	}
}

package acquire_hold

import (
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	acquireHold "github.com/nvbit/SLN-SlotService/internal/usecase/acquire_hold"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// AcquireHoldRequest HTTP request model
type AcquireHoldRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// AcquireHoldResponse HTTP response model
type AcquireHoldResponse struct {
	HoldID          string    `json:"holdId"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(sessionID string, req *AcquireHoldRequest) (*acquireHold.Request, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, err
	}

	return &acquireHold.Request{
		SessionID: sessionID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *acquireHold.Response) *AcquireHoldResponse {
	return &AcquireHoldResponse{
		HoldID:          resp.HoldID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		ExpiresAt:       resp.ExpiresAt,
	}
}

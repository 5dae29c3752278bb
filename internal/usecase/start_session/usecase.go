package start_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/internal/service/session"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_session: internal error")
)

// ServiceInput одна выбранная услуга в запросе
type ServiceInput struct {
	ServiceID       int64
	SubserviceID    *int64
	Name            string
	DurationMinutes int
	Price           float64
}

// Request модель запроса на начало бронирования
type Request struct {
	Services []ServiceInput
}

// Response модель ответа с созданной сессией
type Response struct {
	SessionID            string
	TotalDurationMinutes int
	TotalPrice           float64
	ExpiresAt            time.Time
}

// UseCase use case для начала сессии бронирования
type UseCase struct {
	sessions SessionStore
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionStore, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case начала бронирования
// Контекст принимается для симметрии с остальными usecase; операция чисто in-memory
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartSession: %d services requested", len(req.Services))

	if len(req.Services) == 0 {
		uc.logger.Warn("StartSession: empty services list")
		return nil, fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	selections := make([]domain.ServiceSelection, len(req.Services))
	for i, svc := range req.Services {
		if svc.ServiceID <= 0 {
			return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if svc.Name == "" {
			return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
		}
		selections[i] = domain.ServiceSelection{
			ServiceID:       svc.ServiceID,
			SubserviceID:    svc.SubserviceID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}

	created, err := uc.sessions.Create(selections)
	if err != nil {
		if errors.Is(err, session.ErrNoServices) || errors.Is(err, session.ErrInvalidInput) {
			uc.logger.Warn("StartSession: rejected by session store: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("StartSession: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("StartSession: session %s created, total %d min, %.2f",
		created.SessionID, created.TotalDuration(), created.TotalPrice())

	return &Response{
		SessionID:            created.SessionID,
		TotalDurationMinutes: created.TotalDuration(),
		TotalPrice:           created.TotalPrice(),
		ExpiresAt:            created.ExpiresAt,
	}, nil
}

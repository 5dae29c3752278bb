package next_available_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/internal/service/availability"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Request модель запроса на поиск ближайшего свободного слота
type Request struct {
	FromDate        time.Time // Дата начала поиска
	DurationMinutes int       // Суммарная длительность выбранных услуг
	HorizonDays     int       // Глубина поиска в днях; 0 = горизонт по умолчанию
}

// Response модель ответа с найденным слотом
type Response struct {
	Date      time.Time
	StartTime types.TimeString
}

// UseCase use case для поиска ближайшего свободного слота
type UseCase struct {
	engine AvailabilityEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute выполняет use case поиска ближайшего слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("NextAvailableSlot: from=%s, duration=%d, horizon=%d",
		req.FromDate.Format(domain.DateFormat), req.DurationMinutes, req.HorizonDays)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("NextAvailableSlot: validation failed: %v", err)
		return nil, err
	}

	slot, err := uc.engine.NextAvailableSlot(ctx, req.FromDate, req.DurationMinutes, req.HorizonDays)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrNoAvailability):
			uc.logger.Info("NextAvailableSlot: nothing free within horizon from %s",
				req.FromDate.Format(domain.DateFormat))
			return nil, ErrNoAvailability

		case errors.Is(err, availability.ErrStoreUnavailable):
			uc.logger.Error("NextAvailableSlot: store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

		default:
			uc.logger.Error("NextAvailableSlot: engine error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("NextAvailableSlot: found %s %s",
		slot.Date.Format(domain.DateFormat), slot.StartTime)

	return &Response{
		Date:      slot.Date,
		StartTime: slot.StartTime,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FromDate.IsZero() {
		return fmt.Errorf("%w: from date is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.HorizonDays < 0 || req.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizon out of range", ErrInvalidInput)
	}
	return nil
}

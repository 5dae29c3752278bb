package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/internal/service/availability"
)

// UseCase use case для получения слотов на дату
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

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// Для выходного дня слоты не считаются - салон закрыт
	if uc.engine.Policy().IsClosedOn(req.Date) {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			DurationMinutes: req.DurationMinutes,
			Closed:          true,
			Slots:           []Slot{},
		}, nil
	}

	tagged, err := uc.engine.GetAvailableSlots(ctx, req.Date, req.DurationMinutes)
	if err != nil {
		if errors.Is(err, availability.ErrStoreUnavailable) {
			uc.logger.Error("GetAvailableSlots: store unavailable for %s: %v",
				req.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: engine error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(tagged))
	for i, s := range tagged {
		slots[i] = Slot{
			StartTime: s.Slot.StartTime,
			Available: s.Available,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for %s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

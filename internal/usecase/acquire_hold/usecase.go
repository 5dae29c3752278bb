package acquire_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/internal/service/availability"
	"github.com/nvbit/SLN-SlotService/internal/service/holds"
	"github.com/nvbit/SLN-SlotService/internal/service/session"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Request модель запроса на захват слота
type Request struct {
	SessionID string
	Date      time.Time
	StartTime types.TimeString
}

// Response модель ответа с созданным холдом
type Response struct {
	HoldID          string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ExpiresAt       time.Time
}

// UseCase use case для захвата слота на время заполнения формы
//
// Длительность холда равна суммарной длительности услуг сессии - конфликт
// проверяется на всю ширину бронирования, а не на один шаг сетки.
// Повторный выбор слота в той же сессии снимает предыдущий холд.
type UseCase struct {
	engine   AvailabilityEngine
	holds    HoldManager
	sessions SessionStore
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine AvailabilityEngine, holds HoldManager, sessions SessionStore, logger Logger) *UseCase {
	return &UseCase{
		engine:   engine,
		holds:    holds,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case захвата слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcquireHold: session=%s, date=%s, time=%s",
		req.SessionID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AcquireHold: validation failed: %v", err)
		return nil, err
	}

	// Выходной день отсекается до похода в хранилище
	if uc.engine.Policy().IsClosedOn(req.Date) {
		uc.logger.Warn("AcquireHold: salon closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	sess, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
			uc.logger.Warn("AcquireHold: session %s not found: %v", req.SessionID, err)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("AcquireHold: session lookup failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	duration := sess.TotalDuration()

	// Клиент передумал: его собственный холд не должен блокировать новый выбор,
	// поэтому предыдущий холд снимается ДО проверки доступности. Иначе повторный
	// выбор того же слота (или пересекающегося с ним) вернул бы отказ самому
	// владельцу холда. При неудаче предыдущий холд восстанавливается.
	var prev *domain.Hold
	if sess.HoldID != nil {
		if h, getErr := uc.holds.Get(*sess.HoldID); getErr == nil {
			prev = h
		}
		uc.holds.Release(*sess.HoldID)
	}

	available, err := uc.engine.IsSlotAvailable(ctx, req.Date, req.StartTime, duration)
	if err != nil {
		uc.restorePreviousHold(req.SessionID, prev)
		if errors.Is(err, availability.ErrStoreUnavailable) {
			uc.logger.Error("AcquireHold: store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("AcquireHold: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !available {
		uc.restorePreviousHold(req.SessionID, prev)
		uc.logger.Warn("AcquireHold: slot %s %s not available for %d min",
			req.Date.Format(domain.DateFormat), req.StartTime, duration)
		return nil, ErrSlotNotAvailable
	}

	hold, err := uc.holds.Acquire(req.SessionID, req.Date, req.StartTime, duration, 0)
	if err != nil {
		uc.restorePreviousHold(req.SessionID, prev)
		if errors.Is(err, holds.ErrSlotHeld) {
			uc.logger.Warn("AcquireHold: slot %s %s already held", req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("AcquireHold: failed to acquire hold: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := uc.sessions.SetSchedule(req.SessionID, req.Date, req.StartTime, hold.ID); err != nil {
		// Сессия исчезла между Get и SetSchedule - холд не должен остаться висеть
		uc.holds.Release(hold.ID)
		uc.logger.Error("AcquireHold: failed to attach hold to session %s: %v", req.SessionID, err)
		return nil, ErrSessionNotFound
	}

	uc.logger.Info("AcquireHold: hold %s acquired for session %s, expires at %s",
		hold.ID, req.SessionID, hold.ExpiresAt.Format(time.RFC3339))

	return &Response{
		HoldID:          hold.ID,
		Date:            hold.Date,
		StartTime:       hold.StartTime,
		DurationMinutes: hold.DurationMinutes,
		ExpiresAt:       hold.ExpiresAt,
	}, nil
}

// restorePreviousHold возвращает снятый холд на место с остатком его TTL
// Вызывается, когда новый слот захватить не удалось. Если слот успели занять
// или TTL уже вышел, восстановление пропускается - сессия укажет на мертвый
// холд, и подтверждение завершится ErrHoldExpired с повторным выбором слота.
func (uc *UseCase) restorePreviousHold(sessionID string, prev *domain.Hold) {
	if prev == nil {
		return
	}

	remaining := time.Until(prev.ExpiresAt)
	if remaining <= 0 {
		return
	}

	restored, err := uc.holds.Acquire(sessionID, prev.Date, prev.StartTime, prev.DurationMinutes, remaining)
	if err != nil {
		uc.logger.Warn("AcquireHold: failed to restore hold on %s %s for session %s: %v",
			prev.Date.Format(domain.DateFormat), prev.StartTime, sessionID, err)
		return
	}

	if err := uc.sessions.SetSchedule(sessionID, prev.Date, prev.StartTime, restored.ID); err != nil {
		uc.holds.Release(restored.ID)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: session ID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.StartTime.Valid() {
		return fmt.Errorf("%w: malformed start time %q", ErrInvalidInput, req.StartTime)
	}
	return nil
}

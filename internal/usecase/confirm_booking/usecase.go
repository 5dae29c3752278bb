package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	reservationRepo "github.com/nvbit/SLN-SlotService/internal/infra/storage/reservation"
	"github.com/nvbit/SLN-SlotService/internal/service/holds"
	"github.com/nvbit/SLN-SlotService/internal/service/session"
)

// UseCase use case подтверждения бронирования: холд превращается
// в подтвержденное бронирование в хранилище
//
// Холды в памяти процесса не заменяют серверную гарантию уникальности -
// запись принимается хранилищем только при свободном слоте (уникальный
// индекс по дате и времени начала). Проигранная гонка снимает холд и
// поднимается вызывающему; клиент перезапрашивает доступность и выбирает
// слот заново, автоматических повторов нет.
type UseCase struct {
	store     ReservationStore
	holds     HoldManager
	sessions  SessionStore
	conflicts ConflictRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// conflicts может быть nil, если метрики выключены
func NewUseCase(
	store ReservationStore,
	holds HoldManager,
	sessions SessionStore,
	conflicts ConflictRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     store,
		holds:     holds,
		sessions:  sessions,
		conflicts: conflicts,
		logger:    logger,
	}
}

// Execute выполняет use case подтверждения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session=%s, customer=%s", req.SessionID, req.Customer.Name)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем контактные данные в сессии
	customer := domain.Customer{
		Name:  req.Customer.Name,
		Phone: req.Customer.Phone,
		Email: req.Customer.Email,
		Notes: req.Customer.Notes,
	}
	if err := uc.sessions.SetCustomer(req.SessionID, customer); err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrSessionExpired):
			uc.logger.Warn("ConfirmBooking: session %s not found: %v", req.SessionID, err)
			return nil, ErrSessionNotFound
		case errors.Is(err, session.ErrInvalidInput):
			uc.logger.Warn("ConfirmBooking: invalid customer data: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("ConfirmBooking: failed to set customer: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	sess, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: session %s disappeared: %v", req.SessionID, err)
		return nil, ErrSessionNotFound
	}

	// 3. Сессия должна дойти до шага выбора слота
	if !sess.HasSchedule() || sess.HoldID == nil {
		uc.logger.Warn("ConfirmBooking: session %s has no selected slot", req.SessionID)
		return nil, ErrNoSlotSelected
	}

	// 4. Холд должен быть еще жив
	hold, err := uc.holds.Get(*sess.HoldID)
	if err != nil {
		if errors.Is(err, holds.ErrHoldExpired) || errors.Is(err, holds.ErrHoldNotFound) {
			uc.logger.Warn("ConfirmBooking: hold %s dead: %v", *sess.HoldID, err)
			return nil, ErrHoldExpired
		}
		uc.logger.Error("ConfirmBooking: hold lookup failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Пишем бронирование; хранилище - последний арбитр занятости слота
	candidate := &domain.Reservation{
		Date:            hold.Date,
		StartTime:       hold.StartTime,
		DurationMinutes: hold.DurationMinutes,
		Status:          domain.StatusConfirmed,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerEmail:   customer.Email,
		Notes:           customer.Notes,
		ServiceNames:    strings.Join(sess.ServiceNames(), ", "),
		TotalPrice:      sess.TotalPrice(),
	}

	created, err := uc.store.CreateCommittedReservation(ctx, candidate)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			// Гонка проиграна: другой клиент успел подтвердить этот слот
			uc.holds.Release(hold.ID)
			if uc.conflicts != nil {
				uc.conflicts.SlotConflict()
			}
			uc.logger.Warn("ConfirmBooking: slot %s %s taken by another booking",
				hold.Date.Format(domain.DateFormat), hold.StartTime)
			return nil, ErrSlotConflict
		}

		// Инфраструктурная ошибка хранилища: холд снимается, бронирование не создано
		uc.holds.Release(hold.ID)
		uc.logger.Error("ConfirmBooking: store write failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 6. Успех: холд выполнил свою роль, сессия завершена
	uc.holds.Promote(hold.ID)
	uc.sessions.Discard(req.SessionID)

	uc.logger.Info("ConfirmBooking: reservation id=%d created for %s %s (%d min)",
		created.ID, created.Date.Format(domain.DateFormat), created.StartTime, created.DurationMinutes)

	return &Response{
		ReservationID:   created.ID,
		Date:            created.Date,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		ServiceNames:    created.ServiceNames,
		TotalPrice:      created.TotalPrice,
		CustomerName:    created.CustomerName,
		CustomerPhone:   created.CustomerPhone,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: session ID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	return nil
}

package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	reservationRepo "github.com/nvbit/SLN-SlotService/internal/infra/storage/reservation"
)

// UseCase use case отмены подтвержденного бронирования
//
// Отмена переводит запись в статус cancelled и тем самым освобождает
// слот: уникальный индекс занятости не учитывает отмененные записи,
// поэтому дата и время сразу доступны для нового бронирования.
type UseCase struct {
	store  ReservationStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelReservation: id=%d", req.ReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		return err
	}

	// 2. Бронирование должно существовать и быть в отменяемом статусе
	res, err := uc.store.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: reservation %d not found", req.ReservationID)
			return ErrNotFound
		}
		uc.logger.Error("CancelReservation: store read failed: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !res.CanBeCancelled() {
		uc.logger.Warn("CancelReservation: reservation %d has status %s", req.ReservationID, res.Status)
		return ErrCannotCancel
	}

	// 3. Отмена в хранилище; перевод статуса атомарен на стороне БД,
	// поэтому проигранная гонка со второй отменой тоже дает ErrCannotCancel
	if err := uc.store.Cancel(ctx, req.ReservationID, strings.TrimSpace(req.Reason)); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			uc.logger.Warn("CancelReservation: reservation %d not found", req.ReservationID)
			return ErrNotFound
		case errors.Is(err, reservationRepo.ErrCannotCancel):
			uc.logger.Warn("CancelReservation: reservation %d is not confirmed", req.ReservationID)
			return ErrCannotCancel
		default:
			uc.logger.Error("CancelReservation: store cancel failed: %v", err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	uc.logger.Info("CancelReservation: reservation %d cancelled", req.ReservationID)
	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation ID must be positive", ErrInvalidInput)
	}
	return nil
}

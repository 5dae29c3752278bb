package get_customer_reservations

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case получения истории бронирований клиента по телефону
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

// Execute выполняет use case получения истории бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCustomerReservations: phone=%s", req.Phone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCustomerReservations: validation failed: %v", err)
		return nil, err
	}

	// 2. Чтение истории; хранилище отдает записи новыми вперед
	records, err := uc.store.GetByCustomerPhone(ctx, strings.TrimSpace(req.Phone))
	if err != nil {
		uc.logger.Error("GetCustomerReservations: store read failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	resp := &Response{Reservations: make([]Reservation, 0, len(records))}
	for _, r := range records {
		resp.Reservations = append(resp.Reservations, Reservation{
			ID:                 r.ID,
			Date:               r.Date,
			StartTime:          r.StartTime,
			DurationMinutes:    r.DurationMinutes,
			Status:             r.Status,
			ServiceNames:       r.ServiceNames,
			TotalPrice:         r.TotalPrice,
			CancellationReason: r.CancellationReason,
			CreatedAt:          r.CreatedAt,
		})
	}

	uc.logger.Info("GetCustomerReservations: %d reservations for phone=%s",
		len(resp.Reservations), req.Phone)
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}

package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Engine отвечает на вопросы о доступности слотов: что свободно на дату,
// свободен ли конкретный слот, когда ближайший свободный слот
//
// Движок только читает хранилище и никогда в него не пишет.
// При недоступности хранилища дата считается полностью занятой (fail-closed),
// а ошибка поднимается вызывающему - подставлять "нет бронирований" вместо
// реальных данных нельзя, это маскирует конфликты.
type Engine struct {
	store        ReservationStore
	holds        HoldSource
	policy       domain.WorkingHoursPolicy
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewEngine создает движок доступности
// horizonDays ограничивает поиск ближайшего слота; 0 означает дефолтный горизонт
func NewEngine(
	store ReservationStore,
	holds HoldSource,
	policy domain.WorkingHoursPolicy,
	horizonDays int,
	logger Logger,
) *Engine {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &Engine{
		store:        store,
		holds:        holds,
		policy:       policy,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Policy возвращает политику рабочих часов движка
func (e *Engine) Policy() domain.WorkingHoursPolicy {
	return e.policy
}

// GetAvailableSlots возвращает все номинальные слоты на дату с признаком
// доступности для заданной длительности. Доступность проверяется против
// объединения подтвержденных бронирований и активных холдов.
func (e *Engine) GetAvailableSlots(ctx context.Context, date time.Time, durationMinutes int) ([]domain.SlotAvailability, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	now := e.timeProvider.Now()

	slots := GenerateSlots(e.policy, date, now)
	if len(slots) == 0 {
		return []domain.SlotAvailability{}, nil
	}

	busy, err := e.busyIntervals(ctx, date, now)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SlotAvailability, len(slots))
	for i, slot := range slots {
		result[i] = domain.SlotAvailability{
			Slot:      slot,
			Available: IsAvailable(slot.StartTime, durationMinutes, busy),
		}
	}

	return result, nil
}

// HasAvailability проверяет, есть ли на дату хотя бы один свободный слот
// Для выходного дня всегда возвращает false
func (e *Engine) HasAvailability(ctx context.Context, date time.Time, durationMinutes int) (bool, error) {
	if durationMinutes <= 0 {
		return false, ErrInvalidDuration
	}
	if e.policy.IsClosedOn(date) {
		return false, nil
	}

	slots, err := e.GetAvailableSlots(ctx, date, durationMinutes)
	if err != nil {
		return false, err
	}

	for _, s := range slots {
		if s.Available {
			return true, nil
		}
	}
	return false, nil
}

// IsSlotAvailable проверяет, свободен ли конкретный слот для заданной длительности
// Слот должен быть номинальным: лежать на сетке рабочих часов и еще не пройти.
// Времени вне сетки, выходному дню и прошедшему слоту соответствует false.
func (e *Engine) IsSlotAvailable(ctx context.Context, date time.Time, startTime types.TimeString, durationMinutes int) (bool, error) {
	if durationMinutes <= 0 {
		return false, ErrInvalidDuration
	}
	if date.IsZero() {
		return false, ErrInvalidDate
	}

	now := e.timeProvider.Now()

	nominal := false
	for _, slot := range GenerateSlots(e.policy, date, now) {
		if slot.StartTime == startTime {
			nominal = true
			break
		}
	}
	if !nominal {
		return false, nil
	}

	busy, err := e.busyIntervals(ctx, date, now)
	if err != nil {
		return false, err
	}

	return IsAvailable(startTime, durationMinutes, busy), nil
}

// NextAvailableSlot сканирует дни вперед от fromDate и возвращает первый
// свободный слот для заданной длительности
//
// Поиск ограничен horizonDays (параметр; 0 = горизонт движка). Ограничение
// гарантирует завершение сканирования - например, для политики, где все дни
// выходные, без горизонта поиск не закончился бы никогда.
func (e *Engine) NextAvailableSlot(ctx context.Context, fromDate time.Time, durationMinutes int, horizonDays int) (*domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if fromDate.IsZero() {
		return nil, ErrInvalidDate
	}
	if horizonDays <= 0 {
		horizonDays = e.horizonDays
	}

	now := e.timeProvider.Now()
	day := domain.DateOnly(fromDate)

	for offset := 0; offset < horizonDays; offset++ {
		date := day.AddDate(0, 0, offset)

		if e.policy.IsClosedOn(date) {
			continue
		}

		slots := GenerateSlots(e.policy, date, now)
		if len(slots) == 0 {
			continue
		}

		busy, err := e.busyIntervals(ctx, date, now)
		if err != nil {
			return nil, err
		}

		for _, slot := range slots {
			if IsAvailable(slot.StartTime, durationMinutes, busy) {
				return &slot, nil
			}
		}
	}

	e.logger.Info("NextAvailableSlot: no availability within %d days from %s",
		horizonDays, day.Format(domain.DateFormat))
	return nil, ErrNoAvailability
}

// busyIntervals собирает занятые интервалы даты: бронирования из хранилища
// плюс активные холды. Ошибка чтения хранилища поднимается как ErrStoreUnavailable.
func (e *Engine) busyIntervals(ctx context.Context, date time.Time, now time.Time) ([]domain.TimeInterval, error) {
	reservations, err := e.store.FetchCommittedReservations(ctx, date)
	if err != nil {
		e.logger.Error("busyIntervals: store fetch failed for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	busy := BusyIntervals(reservations)
	if e.holds != nil {
		busy = append(busy, e.holds.ActiveIntervals(date, now)...)
	}
	return busy, nil
}

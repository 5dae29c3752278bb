package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

type fakeStore struct {
	reservations map[string][]*domain.Reservation
	err          error
	calls        int
}

func (s *fakeStore) FetchCommittedReservations(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.reservations[date.Format(domain.DateFormat)], nil
}

type fakeHoldSource struct {
	intervals map[string][]domain.TimeInterval
}

func (h *fakeHoldSource) ActiveIntervals(date time.Time, _ time.Time) []domain.TimeInterval {
	return h.intervals[date.Format(domain.DateFormat)]
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmed(start types.TimeString, duration int) *domain.Reservation {
	return &domain.Reservation{
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func newTestEngine(store *fakeStore, holds *fakeHoldSource, now time.Time) *Engine {
	e := NewEngine(store, holds, testPolicy(), 30, nopLogger{})
	e.timeProvider = &fakeTimeProvider{now: now}
	return e
}

func TestEngine_GetAvailableSlots(t *testing.T) {
	// Понедельник
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	store := &fakeStore{reservations: map[string][]*domain.Reservation{
		"2026-03-16": {confirmed("10:00", 30)},
	}}
	holds := &fakeHoldSource{intervals: map[string][]domain.TimeInterval{
		"2026-03-16": {{Start: "14:00", DurationMinutes: 30}},
	}}
	engine := newTestEngine(store, holds, now)

	slots, err := engine.GetAvailableSlots(context.Background(), date, 30)
	require.NoError(t, err)
	require.Len(t, slots, 18)

	byStart := make(map[types.TimeString]bool, len(slots))
	for _, s := range slots {
		byStart[s.Slot.StartTime] = s.Available
	}

	assert.True(t, byStart["09:00"])
	// Занят бронированием
	assert.False(t, byStart["10:00"])
	// Встык с бронированием - свободен
	assert.True(t, byStart["10:30"])
	// Занят холдом
	assert.False(t, byStart["14:00"])
	assert.True(t, byStart["14:30"])
}

func TestEngine_GetAvailableSlots_WideDuration(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	store := &fakeStore{reservations: map[string][]*domain.Reservation{
		"2026-03-16": {confirmed("11:00", 30)},
	}}
	engine := newTestEngine(store, &fakeHoldSource{}, now)

	// Бронирование на 90 минут: пересечение проверяется на всю ширину
	slots, err := engine.GetAvailableSlots(context.Background(), date, 90)
	require.NoError(t, err)

	byStart := make(map[types.TimeString]bool, len(slots))
	for _, s := range slots {
		byStart[s.Slot.StartTime] = s.Available
	}

	assert.True(t, byStart["09:00"])
	// 09:30+90 заканчивается в 11:00 - встык, свободен
	assert.True(t, byStart["09:30"])
	// 10:00+90 накрывает 11:00-11:30
	assert.False(t, byStart["10:00"])
	assert.False(t, byStart["10:30"])
	assert.False(t, byStart["11:00"])
	assert.True(t, byStart["11:30"])
}

func TestEngine_GetAvailableSlots_StoreError(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	store := &fakeStore{err: errors.New("connection refused")}
	engine := newTestEngine(store, &fakeHoldSource{}, now)

	// Хранилище недоступно - ошибка поднимается, слоты не выдаются
	slots, err := engine.GetAvailableSlots(context.Background(), date, 30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, slots)
}

func TestEngine_GetAvailableSlots_ClosedWeekday(t *testing.T) {
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	store := &fakeStore{}
	engine := newTestEngine(store, &fakeHoldSource{}, now)

	slots, err := engine.GetAvailableSlots(context.Background(), sunday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
	// В выходной день хранилище не опрашивается
	assert.Zero(t, store.calls)
}

func TestEngine_GetAvailableSlots_InvalidInput(t *testing.T) {
	engine := newTestEngine(&fakeStore{}, &fakeHoldSource{}, time.Now())

	_, err := engine.GetAvailableSlots(context.Background(), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = engine.GetAvailableSlots(context.Background(), time.Time{}, 30)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestEngine_HasAvailability(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	store := &fakeStore{}
	engine := newTestEngine(store, &fakeHoldSource{}, now)

	ok, err := engine.HasAvailability(context.Background(), date, 30)
	require.NoError(t, err)
	assert.True(t, ok)

	// Выходной день - false без ошибки
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	ok, err = engine.HasAvailability(context.Background(), sunday, 30)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_IsSlotAvailable(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 16, 9, 45, 0, 0, time.UTC)

	store := &fakeStore{reservations: map[string][]*domain.Reservation{
		"2026-03-16": {confirmed("11:00", 30)},
	}}
	engine := newTestEngine(store, &fakeHoldSource{}, now)

	ctx := context.Background()

	ok, err := engine.IsSlotAvailable(ctx, date, "10:30", 30)
	require.NoError(t, err)
	assert.True(t, ok)

	// Занятый слот
	ok, err = engine.IsSlotAvailable(ctx, date, "11:00", 30)
	require.NoError(t, err)
	assert.False(t, ok)

	// Прошедший слот не номинален
	ok, err = engine.IsSlotAvailable(ctx, date, "09:30", 30)
	require.NoError(t, err)
	assert.False(t, ok)

	// Время вне сетки не номинально
	ok, err = engine.IsSlotAvailable(ctx, date, "10:45", 30)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_NextAvailableSlot(t *testing.T) {
	// Понедельник полностью занят, вторник свободен c 09:00
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	fullDay := make([]*domain.Reservation, 0, 18)
	for m := 9 * 60; m < 18*60; m += 30 {
		start, err := types.NewTimeStringFromMinutes(m)
		require.NoError(t, err)
		fullDay = append(fullDay, confirmed(start, 30))
	}

	store := &fakeStore{reservations: map[string][]*domain.Reservation{
		"2026-03-16": fullDay,
	}}
	engine := newTestEngine(store, &fakeHoldSource{}, now)

	slot, err := engine.NextAvailableSlot(context.Background(), monday, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-17", slot.Date.Format(domain.DateFormat))
	assert.Equal(t, types.TimeString("09:00"), slot.StartTime)
}

func TestEngine_NextAvailableSlot_SkipsClosedDay(t *testing.T) {
	// Поиск с воскресенья - первый слот в понедельник
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	engine := newTestEngine(&fakeStore{}, &fakeHoldSource{}, now)

	slot, err := engine.NextAvailableSlot(context.Background(), sunday, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", slot.Date.Format(domain.DateFormat))
	assert.Equal(t, types.TimeString("09:00"), slot.StartTime)
}

func TestEngine_NextAvailableSlot_HorizonExhausted(t *testing.T) {
	// Все дни недели выходные - свободных слотов нет в принципе,
	// горизонт гарантирует завершение поиска
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	from := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	allClosed := domain.NewWorkingHoursPolicy(9, 18, 30, []int{0, 1, 2, 3, 4, 5, 6})
	store := &fakeStore{}
	engine := NewEngine(store, &fakeHoldSource{}, allClosed, 30, nopLogger{})
	engine.timeProvider = &fakeTimeProvider{now: now}

	slot, err := engine.NextAvailableSlot(context.Background(), from, 30, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAvailability)
	assert.Nil(t, slot)
	assert.Zero(t, store.calls)
}

func TestEngine_NextAvailableSlot_StoreErrorFailsClosed(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	store := &fakeStore{err: errors.New("connection refused")}
	engine := newTestEngine(store, &fakeHoldSource{}, now)

	_, err := engine.NextAvailableSlot(context.Background(), monday, 30, 0)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

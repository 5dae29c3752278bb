package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/internal/service/availability"
)

type fakeEngine struct {
	policy domain.WorkingHoursPolicy
	slots  []domain.SlotAvailability
	err    error
	calls  int
}

func (e *fakeEngine) GetAvailableSlots(context.Context, time.Time, int) ([]domain.SlotAvailability, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.slots, nil
}

func (e *fakeEngine) Policy() domain.WorkingHoursPolicy {
	return e.policy
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPolicy() domain.WorkingHoursPolicy {
	return domain.NewWorkingHoursPolicy(9, 18, 30, []int{0})
}

func TestExecute_Success(t *testing.T) {
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	engine := &fakeEngine{
		policy: testPolicy(),
		slots: []domain.SlotAvailability{
			{Slot: domain.TimeSlot{Date: monday, StartTime: "09:00"}, Available: true},
			{Slot: domain.TimeSlot{Date: monday, StartTime: "09:30"}, Available: false},
		},
	}
	uc := NewUseCase(engine, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, Slot{StartTime: "09:00", Available: true}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "09:30", Available: false}, resp.Slots[1])
}

func TestExecute_ClosedWeekday(t *testing.T) {
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	engine := &fakeEngine{policy: testPolicy()}
	uc := NewUseCase(engine, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday, DurationMinutes: 30})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
	// Движок не вызывается для выходного дня
	assert.Zero(t, engine.calls)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	engine := &fakeEngine{policy: testPolicy(), err: availability.ErrStoreUnavailable}
	uc := NewUseCase(engine, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 30})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, resp)
}

func TestExecute_Validation(t *testing.T) {
	engine := &fakeEngine{policy: testPolicy()}
	uc := NewUseCase(engine, nopLogger{})
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, DurationMinutes: domain.MaxDurationMinutes + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, engine.calls)
}

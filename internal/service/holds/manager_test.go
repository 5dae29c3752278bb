package holds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

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

type countingRecorder struct {
	acquired, released, expired, promoted int
}

func (r *countingRecorder) HoldAcquired()          { r.acquired++ }
func (r *countingRecorder) HoldReleased()          { r.released++ }
func (r *countingRecorder) HoldsExpired(count int) { r.expired += count }
func (r *countingRecorder) HoldPromoted()          { r.promoted++ }

var testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

func newTestManager(now time.Time, recorder Recorder) (*Manager, *fakeTimeProvider) {
	clock := &fakeTimeProvider{now: now}
	m := NewManager(5*time.Minute, time.Minute, nopLogger{}, recorder)
	m.timeProvider = clock
	return m, clock
}

func TestManager_AcquireAndGet(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	recorder := &countingRecorder{}
	m, _ := newTestManager(now, recorder)

	hold, err := m.Acquire("sess-1", testDate, "10:30", 30, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, hold.ID)
	assert.Equal(t, "sess-1", hold.SessionID)
	assert.Equal(t, now.Add(5*time.Minute), hold.ExpiresAt)
	assert.Equal(t, 1, recorder.acquired)

	got, err := m.Get(hold.ID)
	require.NoError(t, err)
	assert.Equal(t, hold.ID, got.ID)

	_, err = m.Get("unknown")
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestManager_Acquire_RejectsOverlap(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	m, _ := newTestManager(now, nil)

	_, err := m.Acquire("sess-1", testDate, "10:30", 60, 0)
	require.NoError(t, err)

	// Тот же слот
	_, err = m.Acquire("sess-2", testDate, "10:30", 30, 0)
	assert.ErrorIs(t, err, ErrSlotHeld)

	// Пересечение по ширине
	_, err = m.Acquire("sess-2", testDate, "11:00", 30, 0)
	assert.ErrorIs(t, err, ErrSlotHeld)

	// Встык - не пересечение
	_, err = m.Acquire("sess-2", testDate, "11:30", 30, 0)
	assert.NoError(t, err)

	// Тот же слот на другую дату свободен
	otherDate := testDate.AddDate(0, 0, 1)
	_, err = m.Acquire("sess-3", otherDate, "10:30", 30, 0)
	assert.NoError(t, err)
}

func TestManager_Acquire_InvalidInput(t *testing.T) {
	m, _ := newTestManager(time.Now(), nil)

	_, err := m.Acquire("sess-1", testDate, "10:30", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidHold)

	_, err = m.Acquire("sess-1", testDate, "bad", 30, 0)
	assert.ErrorIs(t, err, ErrInvalidHold)
}

func TestManager_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	recorder := &countingRecorder{}
	m, clock := newTestManager(now, recorder)

	hold, err := m.Acquire("sess-1", testDate, "10:30", 30, 0)
	require.NoError(t, err)

	// За мгновение до истечения холд еще жив
	clock.now = hold.ExpiresAt.Add(-time.Second)
	_, err = m.Get(hold.ID)
	require.NoError(t, err)

	// Ровно в момент истечения холд мертв
	clock.now = hold.ExpiresAt
	_, err = m.Get(hold.ID)
	assert.ErrorIs(t, err, ErrHoldExpired)

	// Слот снова можно захватить
	_, err = m.Acquire("sess-2", testDate, "10:30", 30, 0)
	assert.NoError(t, err)
}

func TestManager_Expire_PurgesOnlyDead(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	recorder := &countingRecorder{}
	m, clock := newTestManager(now, recorder)

	short, err := m.Acquire("sess-1", testDate, "09:00", 30, time.Minute)
	require.NoError(t, err)
	long, err := m.Acquire("sess-2", testDate, "10:00", 30, 10*time.Minute)
	require.NoError(t, err)

	clock.now = now.Add(2 * time.Minute)
	purged := m.Expire(clock.now)

	assert.Equal(t, 1, purged)
	assert.Equal(t, 1, recorder.expired)
	assert.Equal(t, 1, m.ActiveCount())

	_, err = m.Get(short.ID)
	assert.ErrorIs(t, err, ErrHoldNotFound)
	_, err = m.Get(long.ID)
	assert.NoError(t, err)
}

func TestManager_Release_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	recorder := &countingRecorder{}
	m, _ := newTestManager(now, recorder)

	hold, err := m.Acquire("sess-1", testDate, "10:30", 30, 0)
	require.NoError(t, err)

	m.Release(hold.ID)
	m.Release(hold.ID)
	m.Release("unknown")

	assert.Equal(t, 1, recorder.released)
	assert.Zero(t, m.ActiveCount())

	// Снятый холд освобождает слот
	_, err = m.Acquire("sess-2", testDate, "10:30", 30, 0)
	assert.NoError(t, err)
}

func TestManager_Promote(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	recorder := &countingRecorder{}
	m, _ := newTestManager(now, recorder)

	hold, err := m.Acquire("sess-1", testDate, "10:30", 30, 0)
	require.NoError(t, err)

	m.Promote(hold.ID)
	m.Promote(hold.ID)

	assert.Equal(t, 1, recorder.promoted)
	assert.Zero(t, recorder.released)
	assert.Zero(t, m.ActiveCount())

	_, err = m.Get(hold.ID)
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestManager_ActiveIntervals(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	m, clock := newTestManager(now, nil)

	_, err := m.Acquire("sess-1", testDate, "10:30", 30, time.Minute)
	require.NoError(t, err)
	_, err = m.Acquire("sess-2", testDate, "14:00", 60, 10*time.Minute)
	require.NoError(t, err)
	_, err = m.Acquire("sess-3", testDate.AddDate(0, 0, 1), "10:30", 30, 10*time.Minute)
	require.NoError(t, err)

	intervals := m.ActiveIntervals(testDate, now)
	assert.Len(t, intervals, 2)

	// Истекшие холды в выдачу не попадают даже до фоновой очистки
	clock.now = now.Add(2 * time.Minute)
	intervals = m.ActiveIntervals(testDate, clock.now)
	require.Len(t, intervals, 1)
	assert.Equal(t, domain.TimeInterval{Start: "14:00", DurationMinutes: 60}, intervals[0])
}

func TestManager_StopWithoutStart(t *testing.T) {
	m, _ := newTestManager(time.Now(), nil)
	// Не должно зависнуть
	m.Stop()
	m.Stop()
}

func TestManager_StartStop(t *testing.T) {
	m := NewManager(5*time.Minute, 10*time.Millisecond, nopLogger{}, nil)
	m.Start()
	m.Start()
	time.Sleep(30 * time.Millisecond)
	m.Stop()
}

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
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

func testServices() []domain.ServiceSelection {
	return []domain.ServiceSelection{
		{ServiceID: 1, Name: "Женская стрижка", DurationMinutes: 60, Price: 2500},
		{ServiceID: 2, Name: "Укладка", DurationMinutes: 30, Price: 1200},
	}
}

func newTestStore(now time.Time) (*Store, *fakeTimeProvider) {
	clock := &fakeTimeProvider{now: now}
	s := NewStore(30*time.Minute, nopLogger{})
	s.timeProvider = clock
	return s, clock
}

func TestStore_Create(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(now)

	sess, err := s.Create(testServices())
	require.NoError(t, err)

	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, 90, sess.TotalDuration())
	assert.Equal(t, 3700.0, sess.TotalPrice())
	assert.Equal(t, []string{"Женская стрижка", "Укладка"}, sess.ServiceNames())
	assert.Equal(t, now.Add(30*time.Minute), sess.ExpiresAt)
	assert.False(t, sess.HasSchedule())
	assert.False(t, sess.HasCustomer())
	assert.Equal(t, 1, s.Count())
}

func TestStore_Create_Validation(t *testing.T) {
	s, _ := newTestStore(time.Now())

	_, err := s.Create(nil)
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = s.Create([]domain.ServiceSelection{
		{ServiceID: 1, Name: "X", DurationMinutes: 0, Price: 100},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Create([]domain.ServiceSelection{
		{ServiceID: 1, Name: "X", DurationMinutes: 30, Price: -1},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]domain.ServiceSelection, domain.MaxServicesPerBooking+1)
	for i := range tooMany {
		tooMany[i] = domain.ServiceSelection{ServiceID: int64(i + 1), Name: "X", DurationMinutes: 30}
	}
	_, err = s.Create(tooMany)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStore_Lifecycle(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(now)

	sess, err := s.Create(testServices())
	require.NoError(t, err)

	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	startTime := types.TimeString("11:30")
	require.NoError(t, s.SetSchedule(sess.SessionID, date, startTime, "hold-1"))

	notes := "аллергия на краску"
	require.NoError(t, s.SetCustomer(sess.SessionID, domain.Customer{
		Name:  "  Анна Петрова  ",
		Phone: "+79160000000",
		Notes: &notes,
	}))

	got, err := s.Get(sess.SessionID)
	require.NoError(t, err)
	assert.True(t, got.HasSchedule())
	assert.True(t, got.HasCustomer())
	assert.Equal(t, date, *got.SelectedDate)
	assert.Equal(t, startTime, *got.SelectedTime)
	assert.Equal(t, "hold-1", *got.HoldID)
	// Пробелы по краям обрезаются
	assert.Equal(t, "Анна Петрова", got.Customer.Name)
}

func TestStore_Get_Snapshot(t *testing.T) {
	s, _ := newTestStore(time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))

	sess, err := s.Create(testServices())
	require.NoError(t, err)

	got, err := s.Get(sess.SessionID)
	require.NoError(t, err)

	// Мутация снимка не затрагивает хранимую сессию
	got.Services[0].Price = 999999

	again, err := s.Get(sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, again.Services[0].Price)
}

func TestStore_SetCustomer_Validation(t *testing.T) {
	s, _ := newTestStore(time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))

	sess, err := s.Create(testServices())
	require.NoError(t, err)

	err = s.SetCustomer(sess.SessionID, domain.Customer{Name: "", Phone: "+79160000000"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = s.SetCustomer(sess.SessionID, domain.Customer{Name: "Анна", Phone: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = s.SetCustomer("missing", domain.Customer{Name: "Анна", Phone: "+79160000000"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Discard(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(now)

	sess, err := s.Create(testServices())
	require.NoError(t, err)
	require.NoError(t, s.SetSchedule(sess.SessionID, now, "11:30", "hold-1"))

	holdID := s.Discard(sess.SessionID)
	assert.Equal(t, "hold-1", holdID)
	assert.Zero(t, s.Count())

	// Повторный отказ - no-op
	assert.Empty(t, s.Discard(sess.SessionID))

	_, err = s.Get(sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	s, clock := newTestStore(now)

	sess, err := s.Create(testServices())
	require.NoError(t, err)
	require.NoError(t, s.SetSchedule(sess.SessionID, now, "11:30", "hold-1"))

	clock.now = sess.ExpiresAt.Add(time.Second)

	_, err = s.Get(sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionExpired)
	// Истекшая сессия удаляется при обращении
	assert.Zero(t, s.Count())
}

func TestStore_Expire_ReturnsHoldIDs(t *testing.T) {
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	s, clock := newTestStore(now)

	expiring, err := s.Create(testServices())
	require.NoError(t, err)
	require.NoError(t, s.SetSchedule(expiring.SessionID, now, "11:30", "hold-1"))

	clock.now = now.Add(20 * time.Minute)
	fresh, err := s.Create(testServices())
	require.NoError(t, err)

	clock.now = now.Add(40 * time.Minute)
	holdIDs := s.Expire(clock.now)

	assert.Equal(t, []string{"hold-1"}, holdIDs)
	assert.Equal(t, 1, s.Count())

	_, err = s.Get(fresh.SessionID)
	assert.NoError(t, err)
}

package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

func testPolicy() domain.WorkingHoursPolicy {
	// Рабочие часы 9:00-18:00, шаг 30 минут, воскресенье выходной
	return domain.NewWorkingHoursPolicy(9, 18, 30, []int{0})
}

func TestGenerateSlots_FullDay(t *testing.T) {
	policy := testPolicy()
	// Понедельник, запрос накануне - все слоты в будущем
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	slots := GenerateSlots(policy, date, now)

	// 9 часов по 2 слота в час
	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("17:30"), slots[17].StartTime)

	for _, slot := range slots {
		assert.True(t, domain.SameDay(slot.Date, date))
	}
}

func TestGenerateSlots_PastSlotsExcluded(t *testing.T) {
	policy := testPolicy()
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	// Сегодня 11:00 - слоты 09:00..11:00 уже не предлагаются
	now := time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC)

	slots := GenerateSlots(policy, date, now)

	require.Len(t, slots, 14)
	assert.Equal(t, types.TimeString("11:30"), slots[0].StartTime)
}

func TestGenerateSlots_SlotExactlyAtNowExcluded(t *testing.T) {
	policy := testPolicy()
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC)

	slots := GenerateSlots(policy, date, now)

	// Начало слота должно быть строго позже now
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("11:00"), slots[0].StartTime)
}

func TestGenerateSlots_ClosedWeekday(t *testing.T) {
	policy := testPolicy()
	// Воскресенье
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(policy, sunday, now)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidPolicy(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	// Закрытие раньше открытия
	inverted := domain.NewWorkingHoursPolicy(18, 9, 30, nil)
	assert.Empty(t, GenerateSlots(inverted, date, now))

	// Нулевой шаг сетки
	zeroStep := domain.NewWorkingHoursPolicy(9, 18, 0, nil)
	assert.Empty(t, GenerateSlots(zeroStep, date, now))
}

func TestGenerateSlots_CustomInterval(t *testing.T) {
	policy := domain.NewWorkingHoursPolicy(10, 12, 15, nil)
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(policy, date, now)

	require.Len(t, slots, 8)
	assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:15"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("11:45"), slots[7].StartTime)
}

package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

func interval(start types.TimeString, duration int) domain.TimeInterval {
	return domain.TimeInterval{Start: start, DurationMinutes: duration}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    domain.TimeInterval
		b    domain.TimeInterval
		want bool
	}{
		{
			name: "identical intervals",
			a:    interval("10:00", 30),
			b:    interval("10:00", 30),
			want: true,
		},
		{
			name: "partial overlap",
			a:    interval("10:15", 30),
			b:    interval("10:00", 30),
			want: true,
		},
		{
			name: "containment",
			a:    interval("10:00", 120),
			b:    interval("10:30", 30),
			want: true,
		},
		{
			name: "back to back not a conflict",
			a:    interval("10:30", 30),
			b:    interval("10:00", 30),
			want: false,
		},
		{
			name: "back to back other side",
			a:    interval("10:00", 30),
			b:    interval("10:30", 30),
			want: false,
		},
		{
			name: "disjoint",
			a:    interval("09:00", 30),
			b:    interval("14:00", 60),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	busy := []domain.TimeInterval{
		interval("10:00", 30),
		interval("14:00", 60),
	}

	assert.True(t, IsAvailable("09:00", 30, busy))
	assert.False(t, IsAvailable("10:00", 30, busy))
	// Встык с занятым интервалом - свободно
	assert.True(t, IsAvailable("10:30", 30, busy))
	assert.True(t, IsAvailable("13:00", 60, busy))
	// Широкое бронирование накрывает занятый интервал
	assert.False(t, IsAvailable("13:30", 60, busy))
	assert.False(t, IsAvailable("14:30", 30, busy))
	assert.True(t, IsAvailable("15:00", 30, busy))
}

func TestIsAvailable_NonPositiveDuration(t *testing.T) {
	busy := []domain.TimeInterval{interval("10:00", 30)}

	assert.True(t, IsAvailable("10:00", 0, busy))
	assert.True(t, IsAvailable("10:00", -15, busy))
}

func TestIsAvailable_NoBusyIntervals(t *testing.T) {
	assert.True(t, IsAvailable("10:00", 30, nil))
	assert.True(t, IsAvailable("10:00", 30, []domain.TimeInterval{}))
}

func TestBusyIntervals_SkipsInactiveReservations(t *testing.T) {
	reservations := []*domain.Reservation{
		{StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
		{StartTime: "11:00", DurationMinutes: 30, Status: domain.StatusCancelled},
		{StartTime: "12:00", DurationMinutes: 30, Status: domain.StatusNoShow},
		{StartTime: "13:00", DurationMinutes: 60, Status: domain.StatusCompleted},
	}

	busy := BusyIntervals(reservations)

	assert.Equal(t, []domain.TimeInterval{
		interval("10:00", 30),
		interval("13:00", 60),
	}, busy)
}

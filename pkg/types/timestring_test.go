package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	instant := time.Date(2026, 3, 14, 9, 5, 47, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(instant))
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:30"},
		{name: "valid midnight", input: "00:00"},
		{name: "day boundary allowed", input: "24:00"},
		{name: "past day boundary", input: "24:30", wantErr: true},
		{name: "minutes overflow", input: "10:60", wantErr: true},
		{name: "missing padding", input: "9:30", wantErr: true},
		{name: "no separator", input: "0930", wantErr: true},
		{name: "trailing garbage in minutes", input: "09:3a", wantErr: true},
		{name: "garbage in hours", input: "0a:30", wantErr: true},
		{name: "spaces instead of digits", input: " 9:30", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 1440, TimeString("24:00").Minutes())
	assert.Equal(t, 0, TimeString("bad").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	ts, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	assert.Error(t, ts.Scan(1430))
	assert.Error(t, ts.Scan("25:00"))

	v, err := TimeString("14:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:30", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}

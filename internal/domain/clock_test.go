package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"09:00", MustClock(9, 0), false},
		{"9:05", MustClock(9, 5), false},
		{" 23:59 ", MustClock(23, 59), false},
		{"00:00", 0, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"1200", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClockTime(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestClockTime_Accessors(t *testing.T) {
	c := MustClock(17, 45)
	assert.Equal(t, 17, c.Hour())
	assert.Equal(t, 45, c.Minute())
	assert.Equal(t, 17*60+45, c.Minutes())
	assert.Equal(t, "17:45", c.String())
	assert.True(t, c.After(MustClock(9, 0)))
	assert.False(t, c.After(c))
}

func TestClockOf_TruncatesSeconds(t *testing.T) {
	at := time.Date(2026, time.October, 19, 8, 30, 59, 999, time.Local)
	assert.Equal(t, MustClock(8, 30), ClockOf(at))
}

func TestMustClock_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustClock(25, 0) })
}

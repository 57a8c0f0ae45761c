package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayType(t *testing.T) {
	tests := map[string]DayType{
		"normal":          DayNormal,
		"NORMAL":          DayNormal,
		"holiday":         DayHoliday,
		"holiday-eve":     DayHolidayEvening,
		"HOLIDAY_EVENING": DayHolidayEvening,
		"day-off":         DayOff,
		"off":             DayOff,
		"semi-off":        DaySemiOff,
		"SEMI_DAY_OFF":    DaySemiOff,
	}
	for in, want := range tests {
		got, err := ParseDayType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDayType("vacation")
	assert.Error(t, err)
}

func TestDayType_Valid(t *testing.T) {
	for _, dt := range DayTypes {
		assert.True(t, dt.Valid(), dt)
	}
	assert.False(t, DayType("WEEKEND").Valid())
}

func TestDayType_Comment(t *testing.T) {
	assert.Equal(t, "", DayNormal.Comment())
	assert.Equal(t, "holiday", DayHoliday.Comment())
	assert.Equal(t, "holiday eve", DayHolidayEvening.Comment())
	assert.Equal(t, "day-off", DayOff.Comment())
	assert.Equal(t, "semi-day off", DaySemiOff.Comment())
}

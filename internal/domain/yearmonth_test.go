package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2026-02")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2026, Month: time.February}, ym)
	assert.Equal(t, "2026-02", ym.String())
	assert.Equal(t, "February 2026", ym.Title())

	_, err = ParseYearMonth("2026-13")
	assert.Error(t, err)
}

func TestYearMonth_Bounds(t *testing.T) {
	ym := YearMonth{Year: 2024, Month: time.February}
	assert.Equal(t, 1, ym.First().Day())
	assert.Equal(t, 29, ym.Last().Day())
	assert.Equal(t, time.February, ym.Last().Month())
}

func TestYearMonth_Navigation(t *testing.T) {
	jan := YearMonth{Year: 2026, Month: time.January}
	assert.Equal(t, YearMonth{Year: 2025, Month: time.December}, jan.Prev())
	assert.Equal(t, YearMonth{Year: 2026, Month: time.February}, jan.Next())
	assert.True(t, jan.After(jan.Prev()))
	assert.False(t, jan.After(jan))
	assert.False(t, jan.Prev().After(jan))
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.True(t, SameDate(d, time.Date(2026, time.October, 19, 23, 59, 0, 0, time.Local)))
	assert.False(t, SameDate(d, d.AddDate(0, 0, 1)))
	assert.Equal(t, d, DateOnly(d.Add(15*time.Hour)))
}

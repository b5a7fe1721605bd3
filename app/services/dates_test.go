package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLastDayOfMonth(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2026-01-31", true},
		{"2026-01-30", false},
		{"2026-02-28", true},
		{"2024-02-28", false}, // leap year
		{"2024-02-29", true},
		{"2026-04-30", true},
		{"2026-12-31", true},
		{"2026-03-15", false},
		{"2026-03-01", false},
	}

	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, IsLastDayOfMonth(d), "date %s", tc.date)
	}
}

func TestMonthWindows(t *testing.T) {
	now := time.Date(2026, 3, 31, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), monthStart(now))
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), nextMonthStart(now))
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), startOfTomorrow(now))
}

func TestMonthWindowsAcrossYearEnd(t *testing.T) {
	now := time.Date(2026, 12, 31, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), monthStart(now))
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), nextMonthStart(now))
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), startOfTomorrow(now))
}

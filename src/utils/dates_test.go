package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", Date(2024, time.March, 5), Date(2024, time.March, 5), 0},
		{"one day apart", Date(2024, time.March, 5), Date(2024, time.March, 6), 1},
		{"across leap day", Date(2024, time.February, 28), Date(2024, time.March, 1), 2},
		{"across non-leap february", Date(2023, time.February, 28), Date(2023, time.March, 1), 1},
		{"full leap year inclusive span", Date(2024, time.January, 1), Date(2024, time.December, 31), 365},
		{"reversed", Date(2024, time.March, 6), Date(2024, time.March, 5), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", Date(2024, time.March, 15), Date(2024, time.March, 15), 0},
		{"partial month floors", Date(2024, time.March, 15), Date(2024, time.April, 14), 0},
		{"exact month", Date(2024, time.March, 15), Date(2024, time.April, 15), 1},
		{"across year", Date(2022, time.November, 1), Date(2024, time.January, 1), 14},
		{"negative when reversed", Date(2024, time.April, 15), Date(2024, time.March, 15), -1},
		{"five years", Date(2020, time.June, 1), Date(2025, time.June, 1), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.a, tt.b))
		})
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2024, time.February)
	assert.Equal(t, Date(2024, time.February, 1), start)
	assert.Equal(t, Date(2024, time.February, 29), end)

	start, end = MonthWindow(2023, time.February)
	assert.Equal(t, Date(2023, time.February, 1), start)
	assert.Equal(t, Date(2023, time.February, 28), end)
}

func TestOverlap(t *testing.T) {
	aStart, aEnd := Date(2024, time.January, 1), Date(2024, time.June, 30)
	bStart, bEnd := Date(2024, time.March, 1), Date(2024, time.December, 31)

	start, end, ok := Overlap(aStart, aEnd, bStart, bEnd)
	assert.True(t, ok)
	assert.Equal(t, Date(2024, time.March, 1), start)
	assert.Equal(t, Date(2024, time.June, 30), end)

	_, _, ok = Overlap(aStart, aEnd, Date(2024, time.July, 1), Date(2024, time.July, 31))
	assert.False(t, ok)
}

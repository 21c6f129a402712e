package services

import (
	"testing"
	"time"

	"timevalue/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyAllocationsRoundTrip(t *testing.T) {
	svc := NewProrationService()
	start := utils.Date(2023, time.January, 1)
	end := utils.Date(2023, time.December, 31)

	allocations := svc.MonthlyAllocations(start, end, 1200, 2023)

	var sum float64
	for _, a := range allocations {
		sum += a
	}
	assert.InDelta(t, 1200.0, sum, 0.01)
}

func TestAllocateNoOverlap(t *testing.T) {
	svc := NewProrationService()
	start := utils.Date(2022, time.March, 1)
	end := utils.Date(2022, time.August, 31)

	tests := []struct {
		name                   string
		windowStart, windowEnd time.Time
	}{
		{"window before lifetime", utils.Date(2022, time.January, 1), utils.Date(2022, time.February, 28)},
		{"window after lifetime", utils.Date(2022, time.September, 1), utils.Date(2022, time.September, 30)},
		{"different year", utils.Date(2023, time.March, 1), utils.Date(2023, time.March, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, svc.Allocate(start, end, 600, tt.windowStart, tt.windowEnd))
		})
	}
}

func TestAllocateDegenerateInputs(t *testing.T) {
	svc := NewProrationService()
	windowStart, windowEnd := utils.MonthWindow(2024, time.January)

	// Inverted lifetime and non-positive amounts both degrade to zero.
	assert.Equal(t, 0.0, svc.Allocate(utils.Date(2024, time.March, 1), utils.Date(2024, time.January, 1), 500, windowStart, windowEnd))
	assert.Equal(t, 0.0, svc.Allocate(utils.Date(2024, time.January, 1), utils.Date(2024, time.December, 31), 0, windowStart, windowEnd))
	assert.Equal(t, 0.0, svc.Allocate(utils.Date(2024, time.January, 1), utils.Date(2024, time.December, 31), -10, windowStart, windowEnd))
}

func TestAllocateLeapYearScenario(t *testing.T) {
	svc := NewProrationService()
	start := utils.Date(2024, time.January, 1)
	end := utils.Date(2024, time.December, 31) // 366 days

	daily := svc.DailyValue(start, end, 365)
	assert.InDelta(t, 0.9973, daily, 0.0001)

	january := svc.Allocate(start, end, 365, utils.Date(2024, time.January, 1), utils.Date(2024, time.January, 31))
	assert.InDelta(t, 30.92, january, 0.01)
}

func TestAllocatePartialWindow(t *testing.T) {
	svc := NewProrationService()
	// 10-day subscription, 100 total: 10 per day.
	start := utils.Date(2024, time.June, 26)
	end := utils.Date(2024, time.July, 5)

	june := svc.Allocate(start, end, 100, utils.Date(2024, time.June, 1), utils.Date(2024, time.June, 30))
	july := svc.Allocate(start, end, 100, utils.Date(2024, time.July, 1), utils.Date(2024, time.July, 31))

	assert.InDelta(t, 50.0, june, 1e-9)
	assert.InDelta(t, 50.0, july, 1e-9)
}

func TestYearlyAllocationSpansYears(t *testing.T) {
	svc := NewProrationService()
	// 2023-07-01 .. 2024-06-30: 184 days in 2023, 182 in 2024, 366 total.
	start := utils.Date(2023, time.July, 1)
	end := utils.Date(2024, time.June, 30)

	first := svc.YearlyAllocation(start, end, 366, 2023)
	second := svc.YearlyAllocation(start, end, 366, 2024)

	assert.InDelta(t, 184.0, first, 1e-9)
	assert.InDelta(t, 182.0, second, 1e-9)
	assert.InDelta(t, 366.0, first+second, 1e-9)
}

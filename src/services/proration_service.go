package services

import (
	"time"

	"timevalue/src/utils"
)

type ProrationServiceI interface {
	Allocate(startDate, endDate time.Time, totalAmount float64, windowStart, windowEnd time.Time) float64
	MonthlyAllocations(startDate, endDate time.Time, totalAmount float64, year int) [12]float64
	YearlyAllocation(startDate, endDate time.Time, totalAmount float64, year int) float64
	DailyValue(startDate, endDate time.Time, totalAmount float64) float64
}

// ProrationService spreads a subscription's total cost across calendar
// windows proportionally to the days of its lifetime that fall inside each
// window. Date ranges are inclusive on both ends.
type ProrationService struct{}

func NewProrationService() *ProrationService {
	return &ProrationService{}
}

// Allocate returns the share of totalAmount attributable to the window
// [windowStart, windowEnd]. Zero when the asset's lifetime is empty, the
// amount is non-positive, or the window does not overlap the lifetime.
// Summed over non-overlapping windows covering the full lifetime, the
// allocations reconstruct totalAmount.
func (s *ProrationService) Allocate(startDate, endDate time.Time, totalAmount float64, windowStart, windowEnd time.Time) float64 {
	totalDays := utils.DaysBetween(startDate, endDate) + 1
	if totalDays <= 0 || totalAmount <= 0 {
		return 0
	}

	effectiveStart, effectiveEnd, ok := utils.Overlap(startDate, endDate, windowStart, windowEnd)
	if !ok {
		return 0
	}

	daysInWindow := utils.DaysBetween(effectiveStart, effectiveEnd) + 1
	return totalAmount * float64(daysInWindow) / float64(totalDays)
}

// MonthlyAllocations computes the 12-point monthly trend for a calendar year.
func (s *ProrationService) MonthlyAllocations(startDate, endDate time.Time, totalAmount float64, year int) [12]float64 {
	var allocations [12]float64
	for month := time.January; month <= time.December; month++ {
		windowStart, windowEnd := utils.MonthWindow(year, month)
		allocations[int(month)-1] = s.Allocate(startDate, endDate, totalAmount, windowStart, windowEnd)
	}
	return allocations
}

// YearlyAllocation computes the share of the cost falling inside a calendar year.
func (s *ProrationService) YearlyAllocation(startDate, endDate time.Time, totalAmount float64, year int) float64 {
	windowStart, windowEnd := utils.YearWindow(year)
	return s.Allocate(startDate, endDate, totalAmount, windowStart, windowEnd)
}

// DailyValue returns the cost of one day of the subscription's lifetime.
func (s *ProrationService) DailyValue(startDate, endDate time.Time, totalAmount float64) float64 {
	totalDays := utils.DaysBetween(startDate, endDate) + 1
	if totalDays <= 0 || totalAmount <= 0 {
		return 0
	}
	return totalAmount / float64(totalDays)
}

package services

import (
	"testing"
	"time"

	"timevalue/src/models"
	"timevalue/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rentedAsset(price float64, dueDay int) *models.FixedAsset {
	start := utils.Date(2024, time.February, 1)
	return &models.FixedAsset{
		Status:        models.FixedStatusRent,
		PurchaseDate:  utils.Date(2023, time.June, 1),
		RentPrice:     &price,
		RentStartDate: &start,
		RentDueDay:    &dueDay,
	}
}

func TestMonthlyIncomeOverlapFlag(t *testing.T) {
	asset := rentedAsset(2000, 15)
	end := utils.Date(2024, time.September, 10)
	asset.RentEndDate = &end
	svc := NewRentService()

	// Rent is not day-prorated: any overlap earns the full month.
	assert.Equal(t, 0.0, svc.MonthlyIncome(asset, 2024, time.January))
	assert.Equal(t, 2000.0, svc.MonthlyIncome(asset, 2024, time.February))
	assert.Equal(t, 2000.0, svc.MonthlyIncome(asset, 2024, time.September))
	assert.Equal(t, 0.0, svc.MonthlyIncome(asset, 2024, time.October))
}

func TestMonthlyIncomeRequiresRentStatus(t *testing.T) {
	asset := rentedAsset(2000, 15)
	asset.Status = models.FixedStatusInUse
	svc := NewRentService()

	assert.Equal(t, 0.0, svc.MonthlyIncome(asset, 2024, time.March))
}

func TestYearlyIncomeMonthCount(t *testing.T) {
	asset := rentedAsset(1500, 1)
	end := utils.Date(2024, time.July, 31)
	asset.RentEndDate = &end
	svc := NewRentService()

	// Feb 1 .. Jul 31 is five whole months plus the trailing day: 6 months.
	assert.InDelta(t, 1500*6, svc.YearlyIncome(asset, 2024), 1e-9)
}

func TestYearlyIncomeDefaultsWindow(t *testing.T) {
	asset := rentedAsset(1000, 1)
	asset.RentStartDate = nil
	asset.RentEndDate = nil
	svc := NewRentService()

	// Window defaults to purchase date through year end: all 12 months of a
	// later year overlap.
	assert.InDelta(t, 12000, svc.YearlyIncome(asset, 2024), 1e-9)
}

func TestNextDueDateBeforeDueDay(t *testing.T) {
	asset := rentedAsset(2000, 15)
	asset.RentEndDate = nil
	svc := NewRentService()

	projection, ok := svc.NextDueDate(asset, utils.Date(2024, time.May, 10))
	require.True(t, ok)
	assert.Equal(t, utils.Date(2024, time.May, 15), projection.DueDate)
	assert.Equal(t, 5, projection.DaysUntil)
	assert.Equal(t, RentDueSoon, projection.Urgency)
}

func TestNextDueDateAfterDueDay(t *testing.T) {
	asset := rentedAsset(2000, 15)
	asset.RentEndDate = nil
	svc := NewRentService()

	projection, ok := svc.NextDueDate(asset, utils.Date(2024, time.May, 20))
	require.True(t, ok)
	assert.Equal(t, utils.Date(2024, time.June, 15), projection.DueDate)
}

func TestNextDueDateOnDueDayRollsForward(t *testing.T) {
	asset := rentedAsset(2000, 15)
	asset.RentEndDate = nil
	svc := NewRentService()

	projection, ok := svc.NextDueDate(asset, utils.Date(2024, time.May, 15))
	require.True(t, ok)
	assert.Equal(t, utils.Date(2024, time.June, 15), projection.DueDate)
}

func TestNextDueDatePastRentEnd(t *testing.T) {
	asset := rentedAsset(2000, 15)
	end := utils.Date(2024, time.May, 31)
	asset.RentEndDate = &end
	svc := NewRentService()

	_, ok := svc.NextDueDate(asset, utils.Date(2024, time.May, 20))
	assert.False(t, ok)
}

func TestClassifyRentDueBreakpoints(t *testing.T) {
	tests := []struct {
		days int
		want RentUrgency
	}{
		{-2, RentDueToday},
		{0, RentDueToday},
		{1, RentDueUrgent},
		{3, RentDueUrgent},
		{4, RentDueSoon},
		{7, RentDueSoon},
		{8, RentDueRoutine},
		{30, RentDueRoutine},
	}
	for _, tt := range tests {
		urgency, _, _ := classifyRentDue(tt.days)
		assert.Equal(t, tt.want, urgency, "days=%d", tt.days)
	}
}

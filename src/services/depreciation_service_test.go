package services

import (
	"testing"
	"time"

	"timevalue/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDepreciationAtEndOfLife(t *testing.T) {
	svc := NewDepreciationService()
	input := DepreciationInput{
		OriginalValue:   10000,
		ResidualRate:    5,
		UsefulLifeYears: 3,
		PurchaseDate:    utils.Date(2020, time.June, 1),
	}

	// At exactly end of life and at any point after it, the asset is fully
	// depreciated down to its residual value.
	for _, today := range []time.Time{
		utils.Date(2023, time.June, 1),
		utils.Date(2025, time.January, 15),
		utils.Date(2040, time.December, 31),
	} {
		result := svc.Calculate(input, today)
		assert.InDelta(t, 10000*0.95, result.AccumulatedDepreciation, 1e-9)
		assert.InDelta(t, 10000*0.05, result.CurrentValue, 1e-9)
		assert.Equal(t, 100.0, result.ProgressPct)
	}
}

func TestCalculateDepreciationMonotonic(t *testing.T) {
	svc := NewDepreciationService()
	input := DepreciationInput{
		OriginalValue:   8000,
		ResidualRate:    10,
		UsefulLifeYears: 5,
		PurchaseDate:    utils.Date(2021, time.March, 15),
	}

	previous := -1.0
	today := utils.Date(2021, time.January, 1)
	for i := 0; i < 80; i++ {
		result := svc.Calculate(input, today)
		assert.GreaterOrEqual(t, result.AccumulatedDepreciation, previous)
		assert.GreaterOrEqual(t, result.CurrentValue, result.ResidualValue-1e-9)
		previous = result.AccumulatedDepreciation
		today = today.AddDate(0, 1, 3)
	}
}

func TestCalculateDepreciationBeforePurchase(t *testing.T) {
	svc := NewDepreciationService()
	result := svc.Calculate(DepreciationInput{
		OriginalValue:   5000,
		ResidualRate:    0,
		UsefulLifeYears: 4,
		PurchaseDate:    utils.Date(2025, time.January, 1),
	}, utils.Date(2024, time.June, 1))

	assert.Equal(t, 0, result.UsedMonths)
	assert.Equal(t, 0.0, result.ProgressPct)
	assert.Equal(t, 0.0, result.AccumulatedDepreciation)
	assert.Equal(t, 5000.0, result.CurrentValue)
}

func TestCalculateDepreciationMidLife(t *testing.T) {
	svc := NewDepreciationService()
	result := svc.Calculate(DepreciationInput{
		OriginalValue:   2400,
		ResidualRate:    0,
		UsefulLifeYears: 2,
		PurchaseDate:    utils.Date(2024, time.January, 1),
	}, utils.Date(2025, time.January, 1))

	assert.Equal(t, 12, result.UsedMonths)
	assert.Equal(t, 24, result.TotalMonths)
	assert.InDelta(t, 50.0, result.ProgressPct, 1e-9)
	assert.InDelta(t, 100.0, result.MonthlyDepreciation, 1e-9)
	assert.InDelta(t, 1200.0, result.AccumulatedDepreciation, 1e-9)
	assert.InDelta(t, 1200.0, result.CurrentValue, 1e-9)
	assert.InDelta(t, 1200.0, result.AnnualDepreciation, 1e-9)
	assert.Equal(t, utils.Date(2026, time.January, 1), result.EndOfLife)
}

func TestCalculateDepreciationGuardsInvalidLife(t *testing.T) {
	svc := NewDepreciationService()

	// A zero useful life must not divide by zero; it is floored to one year.
	result := svc.Calculate(DepreciationInput{
		OriginalValue:   1200,
		ResidualRate:    0,
		UsefulLifeYears: 0,
		PurchaseDate:    utils.Date(2024, time.January, 1),
	}, utils.Date(2024, time.July, 1))

	assert.Equal(t, 12, result.TotalMonths)
	assert.InDelta(t, 600.0, result.AccumulatedDepreciation, 1e-9)
}

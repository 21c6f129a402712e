package services

import (
	"time"

	"timevalue/src/utils"
)

type DepreciationInput struct {
	OriginalValue   float64
	ResidualRate    float64
	UsefulLifeYears int
	PurchaseDate    time.Time
}

type DepreciationResult struct {
	EndOfLife               time.Time
	UsedMonths              int
	TotalMonths             int
	ProgressPct             float64
	ResidualValue           float64
	DepreciableValue        float64
	MonthlyDepreciation     float64
	AnnualDepreciation      float64
	AccumulatedDepreciation float64
	CurrentValue            float64
}

type DepreciationServiceI interface {
	Calculate(input DepreciationInput, today time.Time) DepreciationResult
}

// DepreciationService implements straight-line depreciation over the asset's
// useful life, measured in whole months from the purchase date.
type DepreciationService struct{}

func NewDepreciationService() *DepreciationService {
	return &DepreciationService{}
}

// Calculate computes the depreciation state of an asset as of today.
// Current value never drops below the residual value and progress is clamped
// to [0,100] regardless of how far today lies outside the useful life.
func (s *DepreciationService) Calculate(input DepreciationInput, today time.Time) DepreciationResult {
	originalValue := input.OriginalValue
	if originalValue < 0 {
		originalValue = 0
	}

	residualRate := input.ResidualRate
	if residualRate < 0 {
		residualRate = 0
	} else if residualRate > 100 {
		residualRate = 100
	}

	// A useful life below one year would divide by zero further down; the
	// validation layer rejects it on write, stored rows are floored here.
	years := input.UsefulLifeYears
	if years < 1 {
		years = 1
	}

	endOfLife := utils.Day(input.PurchaseDate).AddDate(years, 0, 0)

	usedMonths := utils.MonthsBetween(input.PurchaseDate, today)
	if usedMonths < 0 {
		usedMonths = 0
	}

	totalMonths := years * 12

	progress := float64(usedMonths) / float64(totalMonths) * 100
	if progress > 100 {
		progress = 100
	}

	residualValue := originalValue * residualRate / 100
	depreciableValue := originalValue - residualValue
	monthlyDepreciation := depreciableValue / float64(totalMonths)

	accumulated := monthlyDepreciation * float64(usedMonths)
	if accumulated > depreciableValue {
		accumulated = depreciableValue
	}

	return DepreciationResult{
		EndOfLife:               endOfLife,
		UsedMonths:              usedMonths,
		TotalMonths:             totalMonths,
		ProgressPct:             progress,
		ResidualValue:           residualValue,
		DepreciableValue:        depreciableValue,
		MonthlyDepreciation:     monthlyDepreciation,
		AnnualDepreciation:      depreciableValue / float64(years),
		AccumulatedDepreciation: accumulated,
		CurrentValue:            originalValue - accumulated,
	}
}

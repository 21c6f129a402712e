package services

import (
	"testing"
	"time"

	"timevalue/src/models"
	"timevalue/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService() *ReportService {
	return NewReportService(NewProrationService(), NewDepreciationService(), NewRentService())
}

func virtualWithCategory(name, category string, amount float64, start, end time.Time) models.VirtualAssetWithCategory {
	return models.VirtualAssetWithCategory{
		VirtualAsset: models.VirtualAsset{
			Name:        name,
			TotalAmount: amount,
			StartDate:   start,
			EndDate:     end,
		},
		CategoryName: category,
	}
}

func TestYearSetEndpointYearsOnly(t *testing.T) {
	rs := newReportService()
	dispose := utils.Date(2023, time.January, 1)
	fixed := []models.FixedAssetWithCategory{{
		FixedAsset: models.FixedAsset{
			PurchaseDate: utils.Date(2021, time.June, 1),
			DisposeDate:  &dispose,
		},
	}}

	years := rs.YearSet(nil, fixed, utils.Date(2024, time.March, 1))

	// The span 2021-2023 does not pull in 2022; only endpoint years and the
	// current year appear.
	assert.Equal(t, []int{2024, 2023, 2021}, years)
}

func TestYearSetFiltersEarlyYears(t *testing.T) {
	rs := newReportService()
	virtual := []models.VirtualAssetWithCategory{
		virtualWithCategory("old", "Software", 100, utils.Date(2018, time.January, 1), utils.Date(2019, time.June, 30)),
	}

	years := rs.YearSet(virtual, nil, utils.Date(2024, time.March, 1))
	assert.Equal(t, []int{2024}, years)
}

func TestVirtualYearSummary(t *testing.T) {
	rs := newReportService()
	today := utils.Date(2023, time.June, 15)
	assets := []models.VirtualAssetWithCategory{
		virtualWithCategory("streaming", "Video", 1200, utils.Date(2023, time.January, 1), utils.Date(2023, time.December, 31)),
		virtualWithCategory("cloud drive", "Cloud", 365, utils.Date(2023, time.January, 1), utils.Date(2023, time.December, 31)),
		virtualWithCategory("expired one", "Video", 120, utils.Date(2022, time.January, 1), utils.Date(2022, time.December, 31)),
	}

	summary := rs.VirtualYearSummary(assets, 2023, today)

	assert.InDelta(t, 1565, summary.TotalAmount, 0.01)
	assert.InDelta(t, 1565.0/12, summary.AveragePerMonth, 0.01)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Video", summary.Categories[0].Name)
	assert.InDelta(t, 1200, summary.Categories[0].Value, 0.01)
	assert.Equal(t, "Cloud", summary.Categories[1].Name)

	// January and March have 31 days, both carry the year's max allocation.
	assert.Equal(t, 1, summary.MaxMonth.Month)

	require.NotNil(t, summary.VirtualStatus)
	// Status reflects today, not the displayed year: two assets run through
	// 2023-12-31 (active), one ended in 2022 (expired).
	assert.Equal(t, 2, summary.VirtualStatus.Active)
	assert.Equal(t, 0, summary.VirtualStatus.Expiring)
	assert.Equal(t, 1, summary.VirtualStatus.Expired)
}

func TestVirtualYearSummaryStatusIndependentOfYear(t *testing.T) {
	rs := newReportService()
	today := utils.Date(2024, time.June, 1)
	assets := []models.VirtualAssetWithCategory{
		virtualWithCategory("streaming", "Video", 1200, utils.Date(2022, time.January, 1), utils.Date(2022, time.December, 31)),
	}

	// Viewing the 2022 statistics still counts the asset as expired because
	// counts are computed against today's date.
	summary := rs.VirtualYearSummary(assets, 2022, today)
	assert.Equal(t, 1, summary.VirtualStatus.Expired)
	assert.Equal(t, 0, summary.VirtualStatus.Active)
}

func TestFixedYearSummaryDepreciationAndRent(t *testing.T) {
	rs := newReportService()
	today := utils.Date(2024, time.December, 31)
	price := 1000.0
	rentStart := utils.Date(2024, time.January, 1)
	assets := []models.FixedAssetWithCategory{
		{
			FixedAsset: models.FixedAsset{
				Name:            "camera",
				OriginalValue:   2400,
				ResidualRate:    0,
				UsefulLifeYears: 2,
				PurchaseDate:    utils.Date(2024, time.January, 1),
				Status:          models.FixedStatusInUse,
			},
			CategoryName: "Camera",
		},
		{
			FixedAsset: models.FixedAsset{
				Name:            "apartment",
				OriginalValue:   100000,
				ResidualRate:    50,
				UsefulLifeYears: 20,
				PurchaseDate:    utils.Date(2020, time.March, 1),
				Status:          models.FixedStatusRent,
				RentPrice:       &price,
				RentStartDate:   &rentStart,
			},
			CategoryName: "Property",
		},
	}

	summary := rs.FixedYearSummary(assets, 2024, today)

	// Camera: 100/month from February through December of year one (the
	// first whole month completes at end of February).
	// Apartment: 50000/240 ≈ 208.33/month for all 12 months.
	assert.InDelta(t, 11*100+12*50000.0/240, summary.TotalAmount, 0.01)
	assert.InDelta(t, 12000, summary.RentIncome, 1e-9)

	require.NotNil(t, summary.FixedStatus)
	assert.Equal(t, 1, summary.FixedStatus.InUse)
	assert.Equal(t, 0, summary.FixedStatus.Idle)
}

func TestVirtualAssetStatusThresholds(t *testing.T) {
	today := utils.Date(2024, time.June, 1)
	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"well in the future", utils.Date(2024, time.December, 31), models.VirtualStatusActive},
		{"exactly 31 days out", utils.Date(2024, time.July, 2), models.VirtualStatusActive},
		{"30 days out", utils.Date(2024, time.July, 1), models.VirtualStatusExpiring},
		{"today", today, models.VirtualStatusExpiring},
		{"yesterday", utils.Date(2024, time.May, 31), models.VirtualStatusExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VirtualAssetStatus(tt.end, today))
		})
	}
}

func TestGenerateXLSXReport(t *testing.T) {
	rs := newReportService()
	assets := []models.VirtualAssetWithCategory{
		virtualWithCategory("streaming", "Video", 1200, utils.Date(2023, time.January, 1), utils.Date(2023, time.December, 31)),
	}
	summary := rs.VirtualYearSummary(assets, 2023, utils.Date(2023, time.June, 1))

	file, err := rs.GenerateXLSXReport(summary)
	require.NoError(t, err)

	sheets := file.GetSheetList()
	assert.Contains(t, sheets, "Monthly")
	assert.Contains(t, sheets, "Categories")

	rows, err := file.GetRows("Monthly")
	require.NoError(t, err)
	// Header plus twelve month rows.
	assert.Len(t, rows, 13)
}

package services

import (
	"fmt"
	"sort"
	"time"

	"timevalue/src/models"
	"timevalue/src/schemas"
	"timevalue/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	"timevalue/src/utils/render"
)

// ExpiringSoonDays is the window within which a virtual asset counts as
// expiring rather than active.
const ExpiringSoonDays = 30

// VirtualAssetStatus classifies a subscription against today's date.
func VirtualAssetStatus(endDate, today time.Time) string {
	remaining := utils.DaysBetween(today, endDate)
	switch {
	case remaining < 0:
		return models.VirtualStatusExpired
	case remaining <= ExpiringSoonDays:
		return models.VirtualStatusExpiring
	default:
		return models.VirtualStatusActive
	}
}

type ReportServiceI interface {
	YearSet(virtual []models.VirtualAssetWithCategory, fixed []models.FixedAssetWithCategory, today time.Time) []int
	VirtualYearSummary(assets []models.VirtualAssetWithCategory, year int, today time.Time) *schemas.YearSummary
	FixedYearSummary(assets []models.FixedAssetWithCategory, year int, today time.Time) *schemas.YearSummary
	GenerateXLSXReport(summary *schemas.YearSummary) (*excelize.File, error)
	GeneratePDFReport(summary *schemas.YearSummary) ([]byte, error)
}

type ReportService struct {
	proration    ProrationServiceI
	depreciation DepreciationServiceI
	rent         RentServiceI
}

func NewReportService(proration ProrationServiceI, depreciation DepreciationServiceI, rent RentServiceI) *ReportService {
	return &ReportService{
		proration:    proration,
		depreciation: depreciation,
		rent:         rent,
	}
}

// YearSet derives the list of years worth displaying: the current year plus
// the start and end years of every asset, bounded below and sorted
// descending. Only endpoint years count — an asset spanning 2021-2023 does
// not by itself pull in 2022. A fixed asset without a dispose date is still
// held, so its end year is the current one.
func (rs *ReportService) YearSet(virtual []models.VirtualAssetWithCategory, fixed []models.FixedAssetWithCategory, today time.Time) []int {
	currentYear := today.Year()
	years := map[int]bool{currentYear: true}

	for _, asset := range virtual {
		years[asset.StartDate.Year()] = true
		years[asset.EndDate.Year()] = true
	}
	for _, asset := range fixed {
		years[asset.PurchaseDate.Year()] = true
		if asset.DisposeDate != nil {
			years[asset.DisposeDate.Year()] = true
		}
	}

	result := make([]int, 0, len(years))
	for y := range years {
		if y >= utils.EarliestReportYear {
			result = append(result, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(result)))
	return result
}

// VirtualYearSummary aggregates subscription cost allocations for one year.
func (rs *ReportService) VirtualYearSummary(assets []models.VirtualAssetWithCategory, year int, today time.Time) *schemas.YearSummary {
	var monthly [12]float64
	categories := map[string]float64{}
	statusCounts := schemas.VirtualStatusCounts{}

	for _, asset := range assets {
		allocations := rs.proration.MonthlyAllocations(asset.StartDate, asset.EndDate, asset.TotalAmount, year)
		for i, amount := range allocations {
			monthly[i] += amount
		}

		yearAmount := rs.proration.YearlyAllocation(asset.StartDate, asset.EndDate, asset.TotalAmount, year)
		if yearAmount > 0 {
			categories[asset.CategoryName] += yearAmount
		}

		switch VirtualAssetStatus(asset.EndDate, today) {
		case models.VirtualStatusActive:
			statusCounts.Active++
		case models.VirtualStatusExpiring:
			statusCounts.Expiring++
		case models.VirtualStatusExpired:
			statusCounts.Expired++
		}
	}

	summary := rs.buildSummary(year, monthly, categories)
	summary.VirtualStatus = &statusCounts
	return summary
}

// FixedYearSummary aggregates depreciation charges and rent income for one
// year of fixed-asset ownership.
func (rs *ReportService) FixedYearSummary(assets []models.FixedAssetWithCategory, year int, today time.Time) *schemas.YearSummary {
	var monthly [12]float64
	categories := map[string]float64{}
	statusCounts := schemas.FixedStatusCounts{}
	var rentIncome float64

	for _, asset := range assets {
		result := rs.depreciation.Calculate(DepreciationInput{
			OriginalValue:   asset.OriginalValue,
			ResidualRate:    asset.ResidualRate,
			UsefulLifeYears: asset.UsefulLifeYears,
			PurchaseDate:    asset.PurchaseDate,
		}, today)

		var yearAmount float64
		for month := time.January; month <= time.December; month++ {
			_, monthEnd := utils.MonthWindow(year, month)
			elapsed := utils.MonthsBetween(asset.PurchaseDate, monthEnd)
			if elapsed >= 1 && elapsed <= result.TotalMonths {
				monthly[int(month)-1] += result.MonthlyDepreciation
				yearAmount += result.MonthlyDepreciation
			}
		}
		if yearAmount > 0 {
			categories[asset.CategoryName] += yearAmount
		}

		rentIncome += rs.rent.YearlyIncome(&asset.FixedAsset, year)

		switch asset.Status {
		case models.FixedStatusInUse:
			statusCounts.InUse++
		case models.FixedStatusIdle:
			statusCounts.Idle++
		}
	}

	summary := rs.buildSummary(year, monthly, categories)
	summary.FixedStatus = &statusCounts
	summary.RentIncome = rentIncome
	return summary
}

func (rs *ReportService) buildSummary(year int, monthly [12]float64, categories map[string]float64) *schemas.YearSummary {
	summary := &schemas.YearSummary{
		Year:         year,
		MonthlyTrend: make([]schemas.MonthPoint, 12),
	}

	for i, amount := range monthly {
		summary.MonthlyTrend[i] = schemas.MonthPoint{Month: i + 1, Amount: amount}
		summary.TotalAmount += amount
		if amount > summary.MaxMonth.Amount {
			summary.MaxMonth = schemas.MonthPoint{Month: i + 1, Amount: amount}
		}
	}
	summary.AveragePerMonth = summary.TotalAmount / 12

	summary.Categories = make([]schemas.CategoryValue, 0, len(categories))
	for name, value := range categories {
		summary.Categories = append(summary.Categories, schemas.CategoryValue{Name: name, Value: value})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Value != summary.Categories[j].Value {
			return summary.Categories[i].Value > summary.Categories[j].Value
		}
		return summary.Categories[i].Name < summary.Categories[j].Name
	})

	return summary
}

// GenerateXLSXReport exports a year summary as a spreadsheet with a monthly
// trend sheet and a category breakdown sheet.
func (rs *ReportService) GenerateXLSXReport(summary *schemas.YearSummary) (*excelize.File, error) {
	months := make([]string, 12)
	amounts := make([]float64, 12)
	for i, point := range summary.MonthlyTrend {
		months[i] = fmt.Sprintf("%d-%02d", summary.Year, point.Month)
		amounts[i] = point.Amount
	}
	trendDf := dataframe.New(
		series.New(months, series.String, "Month"),
		series.New(amounts, series.Float, "Amount"),
	)

	file, err := rs.convertDataframeToSheet(nil, &trendDf, "Monthly")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(summary.Categories))
	values := make([]float64, 0, len(summary.Categories))
	for _, category := range summary.Categories {
		names = append(names, category.Name)
		values = append(values, category.Value)
	}
	if len(names) > 0 {
		categoryDf := dataframe.New(
			series.New(names, series.String, "Category"),
			series.New(values, series.Float, "Value"),
		)
		file, err = rs.convertDataframeToSheet(file, &categoryDf, "Categories")
		if err != nil {
			return nil, err
		}
	}

	if err := rs.applyStylesToAllSheets(file); err != nil {
		return nil, err
	}
	return file, nil
}

func (rs *ReportService) convertDataframeToSheet(f *excelize.File, df *dataframe.DataFrame, sheetName string) (*excelize.File, error) {
	if df == nil || df.Nrow() == 0 || df.Ncol() == 0 {
		return f, nil
	}

	if f == nil {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return nil, err
		}
	} else {
		index, err := f.NewSheet(sheetName)
		if err != nil {
			return nil, err
		}
		defer f.SetActiveSheet(index)
	}

	for colIdx, name := range df.Names() {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, err
		}
	}

	for rowIdx := 0; rowIdx < df.Nrow(); rowIdx++ {
		for colIdx := range df.Names() {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, df.Elem(rowIdx, colIdx).Val()); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func (rs *ReportService) applyStylesToAllSheets(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6E6"},
			Pattern: 1,
		},
	})
	if err != nil {
		return err
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}

		lastCol, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, "A1", lastCol, headerStyle); err != nil {
			return err
		}
	}
	return nil
}

// GeneratePDFReport renders a year summary as a two-page PDF: the category
// pie breakdown and the monthly trend bars.
func (rs *ReportService) GeneratePDFReport(summary *schemas.YearSummary) ([]byte, error) {
	categoryData := map[string]float64{}
	for _, category := range summary.Categories {
		categoryData[category.Name] = category.Value
	}

	pieBase, err := render.RenderCategoryPie(fmt.Sprintf("%d Category Breakdown", summary.Year), categoryData)
	if err != nil {
		return nil, err
	}
	piePage, err := render.RenderPage(render.Page{
		Title:     fmt.Sprintf("TimeValue Report %d", summary.Year),
		GraphBase: pieBase,
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 12)
	values := make([]float64, 12)
	for i, point := range summary.MonthlyTrend {
		labels[i] = fmt.Sprintf("%02d", point.Month)
		values[i] = point.Amount
	}
	barBase, err := render.RenderMonthlyBar(fmt.Sprintf("%d Monthly Trend", summary.Year), labels, values)
	if err != nil {
		return nil, err
	}
	barPage, err := render.RenderPage(render.Page{
		Title:     fmt.Sprintf("Monthly Trend %d", summary.Year),
		GraphBase: barBase,
	})
	if err != nil {
		return nil, err
	}

	buffer, err := render.GeneratePDF([]string{piePage, barPage})
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

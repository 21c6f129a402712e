package controllers

import (
	"bytes"
	"context"
	"time"

	"timevalue/src/schemas"
	"timevalue/src/utils"
)

// GetYearlyReport assembles the statistics page payload: the selectable year
// set plus per-kind summaries for the requested year. Kind may be "virtual",
// "fixed" or empty for both.
func (c *Controller) GetYearlyReport(ctx context.Context, userID, year int, kind string) (*schemas.YearlyReportResponse, error) {
	if kind != "" && kind != utils.AssetKindVirtual && kind != utils.AssetKindFixed {
		return nil, utils.BadRequest("unknown asset kind")
	}

	virtual, err := c.VirtualAssets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	fixed, err := c.FixedAssets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.Day(time.Now())
	years := c.Reports.YearSet(virtual, fixed, today)
	if year == 0 {
		year = today.Year()
	}

	response := &schemas.YearlyReportResponse{Years: years}
	if kind == "" || kind == utils.AssetKindVirtual {
		response.Virtual = c.Reports.VirtualYearSummary(virtual, year, today)
	}
	if kind == "" || kind == utils.AssetKindFixed {
		response.Fixed = c.Reports.FixedYearSummary(fixed, year, today)
	}
	return response, nil
}

// GetMonthlyTrend returns just the 12-point series for one kind and year.
func (c *Controller) GetMonthlyTrend(ctx context.Context, userID, year int, kind string) ([]schemas.MonthPoint, error) {
	report, err := c.GetYearlyReport(ctx, userID, year, kind)
	if err != nil {
		return nil, err
	}
	if kind == utils.AssetKindFixed {
		return report.Fixed.MonthlyTrend, nil
	}
	return report.Virtual.MonthlyTrend, nil
}

func (c *Controller) yearSummaryForExport(ctx context.Context, userID, year int, kind string) (*schemas.YearSummary, error) {
	if kind == "" {
		kind = utils.AssetKindVirtual
	}
	report, err := c.GetYearlyReport(ctx, userID, year, kind)
	if err != nil {
		return nil, err
	}
	if kind == utils.AssetKindFixed {
		return report.Fixed, nil
	}
	return report.Virtual, nil
}

// ExportXLSXReport renders the year summary spreadsheet and returns its bytes.
func (c *Controller) ExportXLSXReport(ctx context.Context, userID, year int, kind string) ([]byte, error) {
	summary, err := c.yearSummaryForExport(ctx, userID, year, kind)
	if err != nil {
		return nil, err
	}
	file, err := c.Reports.GenerateXLSXReport(summary)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// ExportPDFReport renders the chart PDF for a year summary.
func (c *Controller) ExportPDFReport(ctx context.Context, userID, year int, kind string) ([]byte, error) {
	summary, err := c.yearSummaryForExport(ctx, userID, year, kind)
	if err != nil {
		return nil, err
	}
	return c.Reports.GeneratePDFReport(summary)
}

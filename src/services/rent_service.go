package services

import (
	"time"

	"timevalue/src/models"
	"timevalue/src/utils"
)

type RentUrgency string

const (
	RentDueToday   RentUrgency = "due_today"
	RentDueUrgent  RentUrgency = "urgent"
	RentDueSoon    RentUrgency = "soon"
	RentDueRoutine RentUrgency = "routine"
)

type RentDueProjection struct {
	DueDate   time.Time
	DaysUntil int
	Urgency   RentUrgency
	Label     string
	Color     string
}

type RentServiceI interface {
	MonthlyIncome(asset *models.FixedAsset, year int, month time.Month) float64
	YearlyIncome(asset *models.FixedAsset, year int) float64
	NextDueDate(asset *models.FixedAsset, today time.Time) (*RentDueProjection, bool)
}

// RentService computes rental income and due-date projections for fixed
// assets under rent status. Unlike subscription proration, rent is an
// all-or-nothing monthly amount: a month earns the full price when its
// interval overlaps the rental window at all.
type RentService struct{}

func NewRentService() *RentService {
	return &RentService{}
}

// effectiveWindow resolves the rental window, defaulting the start to the
// purchase date and the end to the close of the evaluated year.
func (s *RentService) effectiveWindow(asset *models.FixedAsset, year int) (time.Time, time.Time) {
	start := utils.Day(asset.PurchaseDate)
	if asset.RentStartDate != nil {
		start = utils.Day(*asset.RentStartDate)
	}
	end := utils.Date(year, time.December, 31)
	if asset.RentEndDate != nil {
		end = utils.Day(*asset.RentEndDate)
	}
	return start, end
}

// MonthlyIncome returns the rent earned in a given month: the full monthly
// price when the month overlaps the rental window, zero otherwise.
func (s *RentService) MonthlyIncome(asset *models.FixedAsset, year int, month time.Month) float64 {
	if asset.Status != models.FixedStatusRent || asset.RentPrice == nil || *asset.RentPrice <= 0 {
		return 0
	}

	rentStart, rentEnd := s.effectiveWindow(asset, year)
	monthStart, monthEnd := utils.MonthWindow(year, month)
	if _, _, ok := utils.Overlap(rentStart, rentEnd, monthStart, monthEnd); !ok {
		return 0
	}
	return *asset.RentPrice
}

// YearlyIncome returns rent price times the number of months of the year
// whose interval overlaps the effective rental window.
func (s *RentService) YearlyIncome(asset *models.FixedAsset, year int) float64 {
	if asset.Status != models.FixedStatusRent || asset.RentPrice == nil || *asset.RentPrice <= 0 {
		return 0
	}

	rentStart, rentEnd := s.effectiveWindow(asset, year)
	yearStart, yearEnd := utils.YearWindow(year)
	effectiveStart, effectiveEnd, ok := utils.Overlap(rentStart, rentEnd, yearStart, yearEnd)
	if !ok {
		return 0
	}

	months := utils.MonthsBetween(effectiveStart, effectiveEnd) + 1
	return *asset.RentPrice * float64(months)
}

// NextDueDate projects the next rent due date from the configured due day
// (1-28). The second return is false when the asset has no due day configured
// or the projected date falls past the rental end.
func (s *RentService) NextDueDate(asset *models.FixedAsset, today time.Time) (*RentDueProjection, bool) {
	if asset.Status != models.FixedStatusRent || asset.RentDueDay == nil {
		return nil, false
	}
	dueDay := *asset.RentDueDay
	if dueDay < 1 || dueDay > 28 {
		return nil, false
	}

	today = utils.Day(today)
	candidate := utils.Date(today.Year(), today.Month(), dueDay)
	if today.Day() >= dueDay {
		// This cycle's due date has passed; the next one is a month out.
		candidate = candidate.AddDate(0, 1, 0)
	}

	if asset.RentEndDate != nil && candidate.After(utils.Day(*asset.RentEndDate)) {
		return nil, false
	}

	daysUntil := utils.DaysBetween(today, candidate)
	projection := &RentDueProjection{
		DueDate:   candidate,
		DaysUntil: daysUntil,
	}
	projection.Urgency, projection.Label, projection.Color = classifyRentDue(daysUntil)
	return projection, true
}

// classifyRentDue buckets days-until-due at the 0/3/7 breakpoints.
func classifyRentDue(daysUntil int) (RentUrgency, string, string) {
	switch {
	case daysUntil <= 0:
		return RentDueToday, "今日收租", "#ff4d4f"
	case daysUntil <= 3:
		return RentDueUrgent, "即将收租", "#fa8c16"
	case daysUntil <= 7:
		return RentDueSoon, "本周收租", "#fadb14"
	default:
		return RentDueRoutine, "收租正常", "#52c41a"
	}
}

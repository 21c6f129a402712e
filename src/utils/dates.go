package utils

import (
	"time"
)

// Day truncates a timestamp to its calendar day (UTC midnight). All engine
// arithmetic operates on truncated days so wall-clock components never leak
// into day or month counts.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day in UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b. The count is
// exclusive: DaysBetween(d, d) == 0. Callers needing inclusive day spans add 1.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// MonthsBetween returns the number of whole calendar months from a to b,
// floored: a partial trailing month does not count. Negative when b is
// before a.
func MonthsBetween(a, b time.Time) int {
	a, b = Day(a), Day(b)
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}

// MonthWindow returns the first and last day of the given calendar month.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := Date(year, month, 1)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// YearWindow returns the first and last day of the given calendar year.
func YearWindow(year int) (time.Time, time.Time) {
	return Date(year, time.January, 1), Date(year, time.December, 31)
}

// Overlap intersects two inclusive day ranges. ok is false when they are
// disjoint.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) (start, end time.Time, ok bool) {
	start = Day(aStart)
	if Day(bStart).After(start) {
		start = Day(bStart)
	}
	end = Day(aEnd)
	if Day(bEnd).Before(end) {
		end = Day(bEnd)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ParseDay parses a yyyy-mm-dd string into a UTC calendar day.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(ShortDashDateLayout, value)
}

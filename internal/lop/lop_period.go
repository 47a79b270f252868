package lop

import "time"

// Period is an inclusive range of calendar days, held as UTC midnights.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod covers the first to the last day of month in year.
func MonthPeriod(year, month int) Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// NewPeriod truncates both bounds to their calendar day.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: dateOf(start), End: dateOf(end)}
}

func (p Period) Days() int {
	return daysBetween(p.Start, p.End) + 1
}

// Overlaps reports whether p and o share at least one day.
func (p Period) Overlaps(o Period) bool {
	return !p.Start.After(o.End) && !p.End.Before(o.Start)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(dateOf(to).Sub(dateOf(from)).Hours() / 24)
}

package lop

import (
	"context"
	"fmt"
	"time"

	"hris-payroll/internal/leave"

	"github.com/google/uuid"
)

type AbsenceCounter interface {
	CountAbsences(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (int64, error)
}

type LeaveFinder interface {
	FindApprovedOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]leave.Leave, error)
}

// Calculator derives chargeable loss-of-pay days from attendance and leave.
type Calculator struct {
	absences AbsenceCounter
	leaves   LeaveFinder
}

func NewCalculator(absences AbsenceCounter, leaves LeaveFinder) *Calculator {
	return &Calculator{absences: absences, leaves: leaves}
}

// ComputeLopDays returns absent days not covered by approved leave, never
// below zero.
func (c *Calculator) ComputeLopDays(ctx context.Context, employeeID uuid.UUID, period Period) (int, error) {
	absent, err := c.absences.CountAbsences(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return 0, fmt.Errorf("count absences: %w", err)
	}

	leaves, err := c.leaves.FindApprovedOverlapping(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return 0, fmt.Errorf("find approved leave: %w", err)
	}

	return Chargeable(int(absent), CoveredLeaveDays(leaves, period)), nil
}

// CoveredLeaveDays sums each request's days clipped to period. Requests that
// overlap each other are counted once per request.
func CoveredLeaveDays(leaves []leave.Leave, period Period) int {
	total := 0
	for _, l := range leaves {
		total += ClippedDays(NewPeriod(l.StartDate, l.EndDate), period)
	}
	return total
}

// ClippedDays is the number of days of span inside period, floored at 0.
func ClippedDays(span, period Period) int {
	if !span.Overlaps(period) {
		return 0
	}
	start := span.Start
	if period.Start.After(start) {
		start = period.Start
	}
	end := span.End
	if period.End.Before(end) {
		end = period.End
	}

	days := daysBetween(start, end) + 1
	if days < 0 {
		return 0
	}
	return days
}

func Chargeable(absent, covered int) int {
	if absent <= covered {
		return 0
	}
	return absent - covered
}

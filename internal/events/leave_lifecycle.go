package events

import (
	"fmt"
	"time"
)

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const LeaveApproved = "leave_approved"

// LeaveApprovedEvent dates are YYYY-MM-DD, inclusive.
type LeaveApprovedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Dates parses the leave bounds and checks their order.
func (e LeaveApprovedEvent) Dates() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", e.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", e.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s is before start_date %s", e.EndDate, e.StartDate)
	}
	return start, end, nil
}

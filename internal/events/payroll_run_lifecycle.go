package events

import "time"

const PayrollRunLifecycleTopic = "hr.payroll.run.lifecycle.v1"

const (
	PayrollRunApproved  = "payroll_run_approved"
	PayrollRunProcessed = "payroll_run_processed"
)

// PayrollRunLifecycleEvent is published when a run is approved or processed.
type PayrollRunLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RunID      string    `json:"run_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Status     string    `json:"status"`
	EntryCount int64     `json:"entry_count"`
	ActorID    string    `json:"actor_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

package payroll

import (
	"strings"

	payrollerrors "hris-payroll/internal/payroll/errors"
)

type RunStatus string

const (
	StatusDraft     RunStatus = "draft"
	StatusApproved  RunStatus = "approved"
	StatusProcessed RunStatus = "processed"
)

type RunAction string

const (
	ActionCalculate RunAction = "calculate"
	ActionEditEntry RunAction = "edit_entry"
	ActionApprove   RunAction = "approve"
	ActionProcess   RunAction = "process"
	ActionDelete    RunAction = "delete"
)

type transition struct {
	from   RunStatus
	action RunAction
}

// transitions is the complete set of legal moves. Delete leads nowhere; the
// run is removed.
var transitions = map[transition]RunStatus{
	{StatusDraft, ActionCalculate}:  StatusDraft,
	{StatusDraft, ActionEditEntry}:  StatusDraft,
	{StatusDraft, ActionApprove}:    StatusApproved,
	{StatusApproved, ActionProcess}: StatusProcessed,
	{StatusDraft, ActionDelete}:     "",
	{StatusApproved, ActionDelete}:  "",
}

var rejections = map[RunAction]error{
	ActionCalculate: payrollerrors.ErrCalculateOnlyDraft,
	ActionEditEntry: payrollerrors.ErrEditOnlyDraft,
	ActionApprove:   payrollerrors.ErrApproveOnlyDraft,
	ActionProcess:   payrollerrors.ErrProcessOnlyApproved,
	ActionDelete:    payrollerrors.ErrDeleteProcessed,
}

// Apply returns the status reached by performing action from s.
func (s RunStatus) Apply(action RunAction) (RunStatus, error) {
	next, ok := transitions[transition{s, action}]
	if !ok {
		if err, known := rejections[action]; known {
			return s, err
		}
		return s, payrollerrors.ErrRunChanged
	}
	return next, nil
}

// Can reports whether action is legal from s.
func (s RunStatus) Can(action RunAction) bool {
	_, ok := transitions[transition{s, action}]
	return ok
}

func (s RunStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusProcessed:
		return true
	}
	return false
}

// ParseRunStatus accepts any letter case; an empty string means no filter.
func ParseRunStatus(v string) (RunStatus, error) {
	if v == "" {
		return "", nil
	}
	s := RunStatus(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", payrollerrors.ErrInvalidStatusFilter
	}
	return s, nil
}

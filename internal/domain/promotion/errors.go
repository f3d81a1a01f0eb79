package promotion

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotEligible       = errors.New("employee is not eligible for promotion")
	ErrInvalidTransition = errors.New("invalid promotion state transition")
	ErrUnknownEmployee   = errors.New("promotion record references unknown employee")
	ErrRecordNotFound    = errors.New("promotion record not found")
	ErrScheduleNotFound  = errors.New("promotion schedule not found")
)

// EligibilityError is returned when the approval gate rejects a record. It
// carries the evaluator's ordered reasons verbatim; the caller can fix the
// underlying facts and retry.
type EligibilityError struct {
	EmployeeID string
	Reasons    []string
}

func (e *EligibilityError) Error() string {
	return "cannot approve promotion, employee is not eligible: " + strings.Join(e.Reasons, "; ")
}

func (e *EligibilityError) Unwrap() error { return ErrNotEligible }

// TransitionError is returned for any transition from a non-adjacent or
// terminal state. The record is never partially updated.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move promotion from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// AggregationError is surfaced when joined report data is malformed, such
// as a promotion record pointing at an employee that is not in the input
// collection.
type AggregationError struct {
	RecordID   string
	EmployeeID string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("promotion record %s references unknown employee %s", e.RecordID, e.EmployeeID)
}

func (e *AggregationError) Unwrap() error { return ErrUnknownEmployee }

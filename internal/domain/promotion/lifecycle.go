package promotion

import (
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

// Lifecycle of a promotion record: draft -> approved -> implemented. No
// transition skips a state, nothing leaves implemented.

// Approve moves a draft record to approved, gated on the eligibility
// evaluator against the employee's state right now. On failure the record
// is untouched and the returned EligibilityError carries every blocking
// reason in evaluation order.
func Approve(rec *Record, in EligibilityInput, today time.Time, approvedBy string) error {
	if rec.State != StateDraft {
		return &TransitionError{From: rec.State, To: StateApproved}
	}

	eligible, reasons := Evaluate(in)
	if !eligible {
		return &EligibilityError{EmployeeID: rec.EmployeeID, Reasons: reasons}
	}

	approvalDate := today
	rec.State = StateApproved
	rec.ApprovalDate = &approvalDate
	rec.ApprovedBy = approvedBy
	return nil
}

// Implement moves an approved record to implemented and writes the new
// grade, rank and present-appointment date onto the employee. Eligibility
// is not re-checked: approval is a point-in-time commitment. The state
// check happens before any mutation, so either both the record and the
// employee change or neither does.
func Implement(rec *Record, emp *employee.Employee) error {
	if rec.State != StateApproved {
		return &TransitionError{From: rec.State, To: StateImplemented}
	}

	effective := rec.EffectiveDate
	emp.SalaryGradeLevel = rec.NewGradeLevel
	emp.Rank = rec.NewRank
	emp.DatePresentAppointment = &effective
	rec.State = StateImplemented
	return nil
}

// Transition dispatches a record to the named target state. Draft is never
// a valid target: records are created in draft and never move back.
func Transition(rec *Record, emp *employee.Employee, target string, today time.Time, actor string) error {
	switch target {
	case StateApproved:
		return Approve(rec, EligibilityInputFor(emp, today), today, actor)
	case StateImplemented:
		return Implement(rec, emp)
	default:
		return &TransitionError{From: rec.State, To: target}
	}
}

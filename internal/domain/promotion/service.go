package promotion

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

// Service drives the promotion engine against the store. The engine itself
// is pure; the service's job is loading consistent snapshots, holding row
// locks across the gate check and the state write, and caching derived
// facts back onto the employee row.
type Service struct {
	store     *Store
	employees *employee.Store
	zones     map[string]string
}

func NewService(store *Store, employees *employee.Store, zones map[string]string) *Service {
	return &Service{store: store, employees: employees, zones: zones}
}

func (s *Service) Facts(ctx context.Context, employeeID string, today time.Time) (Facts, error) {
	emp, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return Facts{}, err
	}
	history, err := s.store.History(ctx, employeeID)
	if err != nil {
		return Facts{}, err
	}
	return ComputeFacts(emp, history, s.zones, today), nil
}

// RefreshFacts recomputes the employee's derived facts and caches them on
// the employee row.
func (s *Service) RefreshFacts(ctx context.Context, employeeID string, today time.Time) (Facts, error) {
	facts, err := s.Facts(ctx, employeeID, today)
	if err != nil {
		return Facts{}, err
	}
	err = s.employees.UpdateCachedFacts(ctx, employeeID,
		facts.RetirementDate, facts.AgeOnEntry, facts.IsConfirmed,
		facts.NextPromotionDue, facts.GeoZone)
	if err != nil {
		return Facts{}, err
	}
	return facts, nil
}

// RefreshAllFacts recomputes cached facts for the whole workforce. Facts
// drift with the calendar (confirmation, next due date), so the job runner
// calls this on a schedule.
func (s *Service) RefreshAllFacts(ctx context.Context, today time.Time) (int, error) {
	employees, err := s.employees.List(ctx, "", 0, 0)
	if err != nil {
		return 0, err
	}
	refreshed := 0
	for i := range employees {
		if _, err := s.RefreshFacts(ctx, employees[i].ID, today); err != nil {
			return refreshed, err
		}
		refreshed++
	}
	return refreshed, nil
}

func (s *Service) CheckEligibility(ctx context.Context, employeeID string, today time.Time) (bool, []string, error) {
	emp, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return false, nil, err
	}
	eligible, reasons := Evaluate(EligibilityInputFor(emp, today))
	return eligible, reasons, nil
}

// CreateDraft records a proposed promotion in draft state, snapshotting
// the employee's current grade and rank.
func (s *Service) CreateDraft(ctx context.Context, rec Record) (*Record, error) {
	emp, err := s.employees.Get(ctx, rec.EmployeeID)
	if err != nil {
		return nil, err
	}
	rec.OldGradeLevel = emp.SalaryGradeLevel
	rec.OldRank = emp.Rank

	id, err := s.store.CreateRecord(ctx, rec)
	if err != nil {
		return nil, err
	}
	return s.store.GetRecord(ctx, id)
}

func (s *Service) GetRecord(ctx context.Context, recordID string) (*Record, error) {
	return s.store.GetRecord(ctx, recordID)
}

func (s *Service) ListRecords(ctx context.Context, employeeID string, limit, offset int) ([]Record, error) {
	return s.store.ListRecords(ctx, employeeID, limit, offset)
}

// Approve runs the draft -> approved transition. The record row is locked
// for the duration so the eligibility gate and the state write land as one
// unit; concurrent approvals of the same record serialize behind the lock.
func (s *Service) Approve(ctx context.Context, recordID, approvedBy string, today time.Time) (*Record, error) {
	tx, err := s.store.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rec, err := lockRecord(ctx, tx, recordID)
	if err != nil {
		return nil, err
	}
	emp, err := s.employees.Get(ctx, rec.EmployeeID)
	if err != nil {
		return nil, err
	}

	if err := Approve(rec, EligibilityInputFor(emp, today), today, approvedBy); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
    UPDATE promotion_history
    SET state = $2, approval_date = $3, approved_by = $4
    WHERE id = $1
  `, rec.ID, rec.State, rec.ApprovalDate, rec.ApprovedBy); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rec, nil
}

// Implement runs the approved -> implemented transition: the record's
// state change and the employee's new grade, rank and present-appointment
// date commit in the same transaction or not at all. Cached facts are
// refreshed afterwards since the appointment date moved.
func (s *Service) Implement(ctx context.Context, recordID string, today time.Time) (*Record, error) {
	tx, err := s.store.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rec, err := lockRecord(ctx, tx, recordID)
	if err != nil {
		return nil, err
	}
	emp, err := s.employees.Get(ctx, rec.EmployeeID)
	if err != nil {
		return nil, err
	}

	if err := Implement(rec, emp); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
    UPDATE employees
    SET salary_grade_level = $2, rank = $3, date_present_appointment = $4, updated_at = now()
    WHERE id = $1
  `, emp.ID, emp.SalaryGradeLevel, emp.Rank, emp.DatePresentAppointment); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
    UPDATE promotion_history SET state = $2 WHERE id = $1
  `, rec.ID, rec.State); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if _, err := s.RefreshFacts(ctx, emp.ID, today); err != nil {
		return nil, err
	}
	return rec, nil
}

func lockRecord(ctx context.Context, tx pgx.Tx, recordID string) (*Record, error) {
	row := tx.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM promotion_history
    WHERE id = $1
    FOR UPDATE
  `, recordID)
	return scanRecord(row)
}

func (s *Service) CreateSchedule(ctx context.Context, sched Schedule) (*Schedule, error) {
	id, err := s.store.CreateSchedule(ctx, sched)
	if err != nil {
		return nil, err
	}
	return s.store.GetSchedule(ctx, id)
}

func (s *Service) GetSchedule(ctx context.Context, scheduleID string) (*Schedule, error) {
	return s.store.GetSchedule(ctx, scheduleID)
}

func (s *Service) ListSchedules(ctx context.Context) ([]Schedule, error) {
	return s.store.ListSchedules(ctx)
}

// RunSchedule computes the time-in-grade shortlist for a schedule and
// stores it, moving the schedule into screening.
func (s *Service) RunSchedule(ctx context.Context, scheduleID string, today time.Time) ([]string, error) {
	sched, err := s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	workforce, err := s.employees.List(ctx, employee.StatusActive, 0, 0)
	if err != nil {
		return nil, err
	}

	ids := EligibleForSchedule(workforce, sched.MinYearsInGrade, today)
	if err := s.store.ReplaceShortlist(ctx, scheduleID, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Service) Shortlist(ctx context.Context, scheduleID string) ([]string, error) {
	return s.store.Shortlist(ctx, scheduleID)
}

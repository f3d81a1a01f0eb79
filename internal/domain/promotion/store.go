package promotion

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const recordColumns = `
    id, employee_id, old_grade_level, old_rank, new_grade_level, new_rank,
    effective_date, approval_date, approved_by, remarks, state, created_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.OldGradeLevel, &rec.OldRank,
		&rec.NewGradeLevel, &rec.NewRank, &rec.EffectiveDate,
		&rec.ApprovalDate, &rec.ApprovedBy, &rec.Remarks, &rec.State, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) CreateRecord(ctx context.Context, rec Record) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO promotion_history (
      employee_id, old_grade_level, old_rank, new_grade_level, new_rank,
      effective_date, remarks, state
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, rec.EmployeeID, rec.OldGradeLevel, rec.OldRank, rec.NewGradeLevel, rec.NewRank,
		rec.EffectiveDate, rec.Remarks, StateDraft).Scan(&id)
	return id, err
}

func (s *Store) GetRecord(ctx context.Context, recordID string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM promotion_history
    WHERE id = $1
  `, recordID)
	return scanRecord(row)
}

func (s *Store) ListRecords(ctx context.Context, employeeID string, limit, offset int) ([]Record, error) {
	query := `
    SELECT` + recordColumns + `
    FROM promotion_history
  `
	args := []any{}
	if employeeID != "" {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY effective_date DESC, created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// AllRecords loads every promotion record ordered by insertion, the shape
// the aggregation projections expect.
func (s *Store) AllRecords(ctx context.Context) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+recordColumns+`
    FROM promotion_history
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (s *Store) History(ctx context.Context, employeeID string) ([]HistoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT effective_date, new_grade_level, new_rank, state
    FROM promotion_history
    WHERE employee_id = $1
    ORDER BY effective_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.EffectiveDate, &entry.GradeLevel, &entry.Rank, &entry.State); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}

func (s *Store) CreateSchedule(ctx context.Context, sched Schedule) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO promotion_schedules (
      name, promotion_year, min_years_in_grade, exam_date,
      interview_start, interview_end, board_approval_date, effective_date, state
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, sched.Name, sched.PromotionYear, sched.MinYearsInGrade, sched.ExamDate,
		sched.InterviewStart, sched.InterviewEnd, sched.BoardApproval,
		sched.EffectiveDate, ScheduleStateDraft).Scan(&id)
	return id, err
}

func (s *Store) GetSchedule(ctx context.Context, scheduleID string) (*Schedule, error) {
	var sched Schedule
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, promotion_year, min_years_in_grade, exam_date,
           interview_start, interview_end, board_approval_date, effective_date,
           state, created_at
    FROM promotion_schedules
    WHERE id = $1
  `, scheduleID).Scan(
		&sched.ID, &sched.Name, &sched.PromotionYear, &sched.MinYearsInGrade,
		&sched.ExamDate, &sched.InterviewStart, &sched.InterviewEnd,
		&sched.BoardApproval, &sched.EffectiveDate, &sched.State, &sched.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sched, nil
}

func (s *Store) ListSchedules(ctx context.Context) ([]Schedule, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, promotion_year, min_years_in_grade, exam_date,
           interview_start, interview_end, board_approval_date, effective_date,
           state, created_at
    FROM promotion_schedules
    ORDER BY promotion_year DESC, created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []Schedule
	for rows.Next() {
		var sched Schedule
		if err := rows.Scan(
			&sched.ID, &sched.Name, &sched.PromotionYear, &sched.MinYearsInGrade,
			&sched.ExamDate, &sched.InterviewStart, &sched.InterviewEnd,
			&sched.BoardApproval, &sched.EffectiveDate, &sched.State, &sched.CreatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, sched)
	}
	return schedules, rows.Err()
}

// ReplaceShortlist swaps the schedule's shortlist for the freshly computed
// one and moves the schedule into screening, in one transaction.
func (s *Store) ReplaceShortlist(ctx context.Context, scheduleID string, employeeIDs []string) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM promotion_schedule_shortlist WHERE schedule_id = $1", scheduleID); err != nil {
		return err
	}
	for _, employeeID := range employeeIDs {
		if _, err := tx.Exec(ctx, `
      INSERT INTO promotion_schedule_shortlist (schedule_id, employee_id)
      VALUES ($1,$2)
    `, scheduleID, employeeID); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(ctx, `
    UPDATE promotion_schedules SET state = $2 WHERE id = $1
  `, scheduleID, ScheduleStateScreening); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) Shortlist(ctx context.Context, scheduleID string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id
    FROM promotion_schedule_shortlist
    WHERE schedule_id = $1
    ORDER BY employee_id
  `, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

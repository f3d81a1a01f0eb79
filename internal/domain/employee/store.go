package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const employeeColumns = `
    id, file_number, ippis, surname, first_name, middle_name, full_name,
    rank, salary_grade_level, salary_structure, appointment_type, qualification,
    date_of_birth, date_first_appointment, date_present_appointment, date_confirmed,
    rsa_pin, pfa_name, state_of_origin, lga, status, remarks,
    has_disciplinary_case, passed_promotion_exam, promotion_exam_date, promotion_vacancy_available,
    retirement_date, age_on_entry, is_confirmed, next_promotion_due, geo_zone,
    created_at, updated_at`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.FileNumber, &emp.IPPIS, &emp.Surname, &emp.FirstName, &emp.MiddleName, &emp.FullName,
		&emp.Rank, &emp.SalaryGradeLevel, &emp.SalaryStructure, &emp.AppointmentType, &emp.Qualification,
		&emp.DateOfBirth, &emp.DateFirstAppointment, &emp.DatePresentAppointment, &emp.DateConfirmed,
		&emp.RSAPin, &emp.PFAName, &emp.StateOfOrigin, &emp.LGA, &emp.Status, &emp.Remarks,
		&emp.HasDisciplinaryCase, &emp.PassedPromotionExam, &emp.PromotionExamDate, &emp.PromotionVacancyAvailable,
		&emp.RetirementDate, &emp.AgeOnEntry, &emp.IsConfirmed, &emp.NextPromotionDue, &emp.GeoZone,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID)
	return scanEmployee(row)
}

func (s *Store) List(ctx context.Context, status string, limit, offset int) ([]Employee, error) {
	query := `
    SELECT` + employeeColumns + `
    FROM employees
  `
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY full_name"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}
	return employees, rows.Err()
}

func (s *Store) Count(ctx context.Context, status string) (int, error) {
	query := "SELECT COUNT(1) FROM employees"
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	err := s.DB.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (s *Store) Create(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (
      file_number, ippis, surname, first_name, middle_name, full_name,
      rank, salary_grade_level, salary_structure, appointment_type, qualification,
      date_of_birth, date_first_appointment, date_present_appointment, date_confirmed,
      rsa_pin, pfa_name, state_of_origin, lga, status, remarks,
      has_disciplinary_case, passed_promotion_exam, promotion_exam_date, promotion_vacancy_available
    ) VALUES (
      $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25
    )
    RETURNING id
  `,
		emp.FileNumber, emp.IPPIS, emp.Surname, emp.FirstName, emp.MiddleName, emp.FullName,
		emp.Rank, emp.SalaryGradeLevel, emp.SalaryStructure, emp.AppointmentType, emp.Qualification,
		emp.DateOfBirth, emp.DateFirstAppointment, emp.DatePresentAppointment, emp.DateConfirmed,
		emp.RSAPin, emp.PFAName, emp.StateOfOrigin, emp.LGA, emp.Status, emp.Remarks,
		emp.HasDisciplinaryCase, emp.PassedPromotionExam, emp.PromotionExamDate, emp.PromotionVacancyAvailable,
	).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, employeeID string, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET
      file_number = $2, ippis = $3, surname = $4, first_name = $5, middle_name = $6, full_name = $7,
      rank = $8, salary_grade_level = $9, salary_structure = $10, appointment_type = $11, qualification = $12,
      date_of_birth = $13, date_first_appointment = $14, date_present_appointment = $15, date_confirmed = $16,
      rsa_pin = $17, pfa_name = $18, state_of_origin = $19, lga = $20, status = $21, remarks = $22,
      has_disciplinary_case = $23, passed_promotion_exam = $24, promotion_exam_date = $25,
      promotion_vacancy_available = $26, updated_at = now()
    WHERE id = $1
  `,
		employeeID,
		emp.FileNumber, emp.IPPIS, emp.Surname, emp.FirstName, emp.MiddleName, emp.FullName,
		emp.Rank, emp.SalaryGradeLevel, emp.SalaryStructure, emp.AppointmentType, emp.Qualification,
		emp.DateOfBirth, emp.DateFirstAppointment, emp.DatePresentAppointment, emp.DateConfirmed,
		emp.RSAPin, emp.PFAName, emp.StateOfOrigin, emp.LGA, emp.Status, emp.Remarks,
		emp.HasDisciplinaryCase, emp.PassedPromotionExam, emp.PromotionExamDate, emp.PromotionVacancyAvailable,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateCachedFacts stores the derived facts the promotion engine computed
// for this employee. Plain scalars keep this package free of a dependency
// on the engine.
func (s *Store) UpdateCachedFacts(ctx context.Context, employeeID string,
	retirementDate *time.Time, ageOnEntry int, isConfirmed bool,
	nextPromotionDue *time.Time, geoZone string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees SET
      retirement_date = $2, age_on_entry = $3, is_confirmed = $4,
      next_promotion_due = $5, geo_zone = $6, updated_at = now()
    WHERE id = $1
  `, employeeID, retirementDate, ageOnEntry, isConfirmed, nextPromotionDue, geoZone)
	return err
}

func (s *Store) Delete(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

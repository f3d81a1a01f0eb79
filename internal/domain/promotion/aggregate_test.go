package promotion

import (
	"errors"
	"testing"
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

func TestBuildEligibilityRowsAllPassing(t *testing.T) {
	employees := []employee.Employee{*eligibleEmployee()}
	today := date(2026, time.February, 1)

	rows, err := BuildEligibilityRows(employees, nil, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	row := rows[0]
	if !row.Eligible {
		t.Fatalf("expected eligible row, got %+v", row)
	}
	if row.EligibilityPercentage != 100 {
		t.Fatalf("expected 100%%, got %v", row.EligibilityPercentage)
	}
	if row.PromotionState != StateDraft {
		t.Fatalf("expected default draft state, got %s", row.PromotionState)
	}
}

func TestBuildEligibilityRowsThreeOfFive(t *testing.T) {
	emp := eligibleEmployee()
	emp.PromotionVacancyAvailable = false
	emp.PassedPromotionExam = false
	today := date(2026, time.February, 1)

	rows, err := BuildEligibilityRows([]employee.Employee{*emp}, nil, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rows[0]
	if row.Eligible {
		t.Fatal("expected ineligible with two failing criteria")
	}
	if row.EligibilityPercentage != 60.00 {
		t.Fatalf("expected 60.00 for 3 of 5 criteria, got %v", row.EligibilityPercentage)
	}
}

func TestBuildEligibilityRowsJoinsLatestRecord(t *testing.T) {
	emp := eligibleEmployee()
	today := date(2026, time.February, 1)
	records := []Record{
		{ID: "p1", EmployeeID: emp.ID, EffectiveDate: date(2020, time.April, 1), State: StateImplemented},
		{ID: "p2", EmployeeID: emp.ID, EffectiveDate: date(2024, time.April, 1), State: StateImplemented},
		{ID: "p3", EmployeeID: emp.ID, EffectiveDate: date(2023, time.April, 1), State: StateDraft},
	}

	rows, err := BuildEligibilityRows([]employee.Employee{*emp}, records, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rows[0]
	if row.PromotionCount != 2 {
		t.Fatalf("expected 2 implemented promotions, got %d", row.PromotionCount)
	}
	if row.PromotionState != StateImplemented {
		t.Fatalf("expected latest record's state, got %s", row.PromotionState)
	}
}

func TestBuildEligibilityRowsTieBreaksOnInputOrder(t *testing.T) {
	emp := eligibleEmployee()
	effective := date(2024, time.April, 1)
	records := []Record{
		{ID: "p1", EmployeeID: emp.ID, EffectiveDate: effective, State: StateImplemented},
		{ID: "p2", EmployeeID: emp.ID, EffectiveDate: effective, State: StateDraft},
	}

	rows, err := BuildEligibilityRows([]employee.Employee{*emp}, records, date(2026, time.February, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].PromotionState != StateDraft {
		t.Fatalf("expected later record to win the tie, got %s", rows[0].PromotionState)
	}
}

func TestBuildEligibilityRowsUnknownEmployee(t *testing.T) {
	records := []Record{
		{ID: "p1", EmployeeID: "ghost", EffectiveDate: date(2024, time.April, 1), State: StateDraft},
	}

	_, err := BuildEligibilityRows([]employee.Employee{*eligibleEmployee()}, records, date(2026, time.February, 1))
	if !errors.Is(err, ErrUnknownEmployee) {
		t.Fatalf("expected ErrUnknownEmployee, got %v", err)
	}
	var aggErr *AggregationError
	if !errors.As(err, &aggErr) || aggErr.RecordID != "p1" || aggErr.EmployeeID != "ghost" {
		t.Fatalf("expected aggregation error naming record p1 and employee ghost, got %v", err)
	}
}

func TestBuildAnalysisRows(t *testing.T) {
	emp := eligibleEmployee()
	records := []Record{
		{ID: "p1", EmployeeID: emp.ID, NewGradeLevel: "8", NewRank: "Principal Officer",
			EffectiveDate: date(2024, time.April, 1), State: StateImplemented},
		{ID: "p2", EmployeeID: emp.ID, NewGradeLevel: "9", NewRank: "Assistant Chief Officer",
			EffectiveDate: date(2025, time.April, 1), State: StateApproved},
	}

	rows, err := BuildAnalysisRows([]employee.Employee{*emp}, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rows[0]
	if row.PromotionCount != 1 {
		t.Fatalf("expected 1 implemented promotion, got %d", row.PromotionCount)
	}
	if row.NewGrade != "9" || row.PromotionState != StateApproved {
		t.Fatalf("expected latest record joined, got %+v", row)
	}
	if row.LastPromotionDate == nil || !row.LastPromotionDate.Equal(date(2025, time.April, 1)) {
		t.Fatalf("expected last promotion 2025-04-01, got %v", row.LastPromotionDate)
	}
}

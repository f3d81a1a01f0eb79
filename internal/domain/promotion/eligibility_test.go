package promotion

import (
	"strings"
	"testing"
	"time"
)

func passingInput() EligibilityInput {
	return EligibilityInput{
		GradeLevel:          "6",
		DateConfirmed:       datePtr(2020, time.January, 1),
		IsConfirmed:         true,
		HasDisciplinaryCase: false,
		VacancyAvailable:    true,
		PassedExam:          true,
		Today:               date(2026, time.January, 1),
	}
}

func TestEvaluateAllCriteriaPass(t *testing.T) {
	eligible, reasons := Evaluate(passingInput())
	if !eligible {
		t.Fatalf("expected eligible, got reasons %v", reasons)
	}
	if len(reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", reasons)
	}
}

func TestEvaluateSingleCriterionFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EligibilityInput)
		reason string
	}{
		{
			name:   "not confirmed",
			mutate: func(in *EligibilityInput) { in.IsConfirmed = false },
			reason: "Staff must be confirmed (2 years from present appointment)",
		},
		{
			name:   "disciplinary case",
			mutate: func(in *EligibilityInput) { in.HasDisciplinaryCase = true },
			reason: "Staff has disciplinary case(s)",
		},
		{
			name:   "no vacancy",
			mutate: func(in *EligibilityInput) { in.VacancyAvailable = false },
			reason: "No promotion vacancy available",
		},
		{
			name:   "exam not passed",
			mutate: func(in *EligibilityInput) { in.PassedExam = false },
			reason: "Staff must pass promotion exam",
		},
	}

	for _, tc := range cases {
		in := passingInput()
		tc.mutate(&in)
		eligible, reasons := Evaluate(in)
		if eligible {
			t.Fatalf("%s: expected ineligible", tc.name)
		}
		if len(reasons) != 1 || reasons[0] != tc.reason {
			t.Fatalf("%s: expected exactly [%s], got %v", tc.name, tc.reason, reasons)
		}
	}
}

func TestEvaluateMaturityNotMetWithConfirmationDate(t *testing.T) {
	// Confirmed 2024-01-01, grade 6 needs 3 years, today 2026-06-01:
	// ~2.41 years elapsed, ~0.6 years remaining.
	in := passingInput()
	in.DateConfirmed = datePtr(2024, time.January, 1)
	in.Today = date(2026, time.June, 1)

	eligible, reasons := Evaluate(in)
	if eligible {
		t.Fatal("expected ineligible before maturity")
	}
	expected := "Maturity period not met. Grade 6 requires 3 years. 0.6 years remaining."
	if len(reasons) != 1 || reasons[0] != expected {
		t.Fatalf("expected [%s], got %v", expected, reasons)
	}
}

func TestEvaluateMaturityWithoutConfirmationDate(t *testing.T) {
	in := passingInput()
	in.DateConfirmed = nil

	eligible, reasons := Evaluate(in)
	if eligible {
		t.Fatal("expected ineligible without confirmation date")
	}
	expected := "Maturity period not met for grade level 6 (3 years required)"
	if len(reasons) != 1 || reasons[0] != expected {
		t.Fatalf("expected [%s], got %v", expected, reasons)
	}
	if strings.Contains(reasons[0], "remaining") {
		t.Fatalf("reason should omit remaining time without a confirmation date: %s", reasons[0])
	}
}

func TestEvaluateReasonOrderIsStable(t *testing.T) {
	in := EligibilityInput{
		GradeLevel:          "14",
		HasDisciplinaryCase: true,
		Today:               date(2026, time.January, 1),
	}
	_, reasons := Evaluate(in)
	expected := []string{
		"Staff must be confirmed (2 years from present appointment)",
		"Maturity period not met for grade level 14 (4 years required)",
		"Staff has disciplinary case(s)",
		"No promotion vacancy available",
		"Staff must pass promotion exam",
	}
	if len(reasons) != len(expected) {
		t.Fatalf("expected %d reasons, got %v", len(expected), reasons)
	}
	for i := range expected {
		if reasons[i] != expected[i] {
			t.Fatalf("reason %d: expected %q, got %q", i, expected[i], reasons[i])
		}
	}
}

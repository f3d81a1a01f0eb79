package promotion

import "fmt"

// Evaluate checks the five promotion criteria in a fixed order and returns
// the verdict with a human-readable reason for every failing criterion.
// The verdict is a plain conjunction: eligible iff no reasons.
func Evaluate(in EligibilityInput) (bool, []string) {
	var reasons []string

	if !in.IsConfirmed {
		reasons = append(reasons, "Staff must be confirmed (2 years from present appointment)")
	}

	if !MaturityMet(in.DateConfirmed, in.GradeLevel, in.Today) {
		maturityYears := MaturityPeriodYears(in.GradeLevel)
		if in.DateConfirmed != nil {
			remaining := float64(maturityYears) - yearsBetween(*in.DateConfirmed, in.Today)
			reasons = append(reasons, fmt.Sprintf(
				"Maturity period not met. Grade %s requires %d years. %.1f years remaining.",
				in.GradeLevel, maturityYears, remaining))
		} else {
			reasons = append(reasons, fmt.Sprintf(
				"Maturity period not met for grade level %s (%d years required)",
				in.GradeLevel, maturityYears))
		}
	}

	if in.HasDisciplinaryCase {
		reasons = append(reasons, "Staff has disciplinary case(s)")
	}

	if !in.VacancyAvailable {
		reasons = append(reasons, "No promotion vacancy available")
	}

	if !in.PassedExam {
		reasons = append(reasons, "Staff must pass promotion exam")
	}

	return len(reasons) == 0, reasons
}

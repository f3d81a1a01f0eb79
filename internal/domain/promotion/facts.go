package promotion

import (
	"strconv"
	"strings"
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

// Temporal fact calculator. Every function is pure: the clock and lookup
// tables are passed in, identical inputs always produce identical outputs.
//
// Year arithmetic is deliberately mixed: confirmation and maturity use a
// flat 365.25-day year (service rules were written against elapsed days),
// while retirement and next-promotion dates shift whole calendar years.
// Unifying the two would move real eligibility boundary dates.

const daysPerYear = 365.25

func yearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / daysPerYear
}

// RetirementDate returns the date the employee retires: the birth date
// shifted forward by 65 years for PhD or Master's holders, 60 otherwise.
// time.Date normalizes the shift, so a Feb-29 birth date lands on Mar-1 in
// a non-leap target year. Nil birth date yields nil.
func RetirementDate(birthDate *time.Time, qualification string) *time.Time {
	if birthDate == nil {
		return nil
	}
	age := RetirementAgeDefault
	switch strings.ToLower(strings.TrimSpace(qualification)) {
	case "phd", "master":
		age = RetirementAgeAdvanced
	}
	retired := time.Date(birthDate.Year()+age, birthDate.Month(), birthDate.Day(),
		0, 0, 0, 0, time.UTC)
	return &retired
}

// AgeOnEntry returns whole years between birth and first appointment,
// subtracting one when the appointment falls before the birthday that
// year. Zero when either date is missing.
func AgeOnEntry(birthDate, firstAppointment *time.Time) int {
	if birthDate == nil || firstAppointment == nil {
		return 0
	}
	age := firstAppointment.Year() - birthDate.Year()
	if firstAppointment.Month() < birthDate.Month() ||
		(firstAppointment.Month() == birthDate.Month() && firstAppointment.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// IsConfirmed reports whether the employee counts as confirmed staff. An
// explicit confirmation date always wins; otherwise two years must have
// elapsed since the present appointment.
func IsConfirmed(presentAppointment, confirmedDate *time.Time, today time.Time) bool {
	if confirmedDate != nil {
		return true
	}
	if presentAppointment == nil {
		return false
	}
	return yearsBetween(*presentAppointment, today) >= ConfirmationYears
}

// MaturityPeriodYears returns the years an employee must hold a grade
// before promotion: 2 up to grade 5, 3 for grades 6-12, 4 from grade 13.
// Missing or non-numeric grades fall back to 3 years.
func MaturityPeriodYears(gradeLevel string) int {
	level, err := strconv.Atoi(strings.TrimSpace(gradeLevel))
	if err != nil {
		return DefaultMaturityYears
	}
	switch {
	case level <= 5:
		return 2
	case level <= 12:
		return 3
	default:
		return 4
	}
}

// MaturityMet reports whether the grade's maturity period has elapsed
// since confirmation. Always false without a confirmation date.
func MaturityMet(confirmedDate *time.Time, gradeLevel string, today time.Time) bool {
	if confirmedDate == nil {
		return false
	}
	return yearsBetween(*confirmedDate, today) >= float64(MaturityPeriodYears(gradeLevel))
}

// NextPromotionDue returns the earliest date the next promotion may take
// effect: three calendar years after the latest promotion on record, or
// after the present appointment when there is no history. Nil when neither
// anchor exists.
func NextPromotionDue(history []HistoryEntry, presentAppointment *time.Time) *time.Time {
	var anchor *time.Time
	for i := range history {
		if anchor == nil || history[i].EffectiveDate.After(*anchor) {
			anchor = &history[i].EffectiveDate
		}
	}
	if anchor == nil {
		anchor = presentAppointment
	}
	if anchor == nil {
		return nil
	}
	due := anchor.AddDate(MinYearsBetweenPromotions, 0, 0)
	return &due
}

// GeoZone looks the state of origin up in the supplied zone table. An
// unmapped state yields the empty string, not an error.
func GeoZone(stateOfOrigin string, zones map[string]string) string {
	return zones[stateOfOrigin]
}

// ComputeFacts bundles all derived facts for one employee at one instant.
func ComputeFacts(emp *employee.Employee, history []HistoryEntry, zones map[string]string, today time.Time) Facts {
	return Facts{
		RetirementDate:   RetirementDate(emp.DateOfBirth, emp.Qualification),
		AgeOnEntry:       AgeOnEntry(emp.DateOfBirth, emp.DateFirstAppointment),
		IsConfirmed:      IsConfirmed(emp.DatePresentAppointment, emp.DateConfirmed, today),
		MaturityYears:    MaturityPeriodYears(emp.SalaryGradeLevel),
		MaturityMet:      MaturityMet(emp.DateConfirmed, emp.SalaryGradeLevel, today),
		NextPromotionDue: NextPromotionDue(history, emp.DatePresentAppointment),
		GeoZone:          GeoZone(emp.StateOfOrigin, zones),
	}
}

// EligibilityInputFor derives the evaluator's input from an employee
// snapshot at the supplied instant.
func EligibilityInputFor(emp *employee.Employee, today time.Time) EligibilityInput {
	return EligibilityInput{
		GradeLevel:          emp.SalaryGradeLevel,
		DateConfirmed:       emp.DateConfirmed,
		IsConfirmed:         IsConfirmed(emp.DatePresentAppointment, emp.DateConfirmed, today),
		HasDisciplinaryCase: emp.HasDisciplinaryCase,
		VacancyAvailable:    emp.PromotionVacancyAvailable,
		PassedExam:          emp.PassedPromotionExam,
		Today:               today,
	}
}

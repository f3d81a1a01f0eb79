package employee

import (
	"errors"
	"strings"
)

var ErrValidation = errors.New("employee validation failed")

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Reason)
	}
	return "employee validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validate enforces the write-path invariants before an employee record is
// persisted. The promotion engine assumes they hold and never re-checks.
func Validate(emp *Employee) error {
	var issues []ValidationIssue

	if emp.DateFirstAppointment != nil && emp.DatePresentAppointment != nil &&
		emp.DatePresentAppointment.Before(*emp.DateFirstAppointment) {
		issues = append(issues, ValidationIssue{
			Field:  "datePresentAppointment",
			Reason: "date of present appointment cannot be before date of first appointment",
		})
	}
	if emp.SalaryGradeLevel != "" && !contains(SalaryGradeLevels, emp.SalaryGradeLevel) {
		issues = append(issues, ValidationIssue{
			Field:  "salaryGradeLevel",
			Reason: "unknown salary grade level",
		})
	}
	if emp.StateOfOrigin != "" {
		if _, ok := GeoZones[emp.StateOfOrigin]; !ok {
			issues = append(issues, ValidationIssue{
				Field:  "stateOfOrigin",
				Reason: "unknown state of origin",
			})
		}
	}
	if emp.Status != "" && !contains(Statuses, emp.Status) {
		issues = append(issues, ValidationIssue{
			Field:  "status",
			Reason: "unknown employee status",
		})
	}
	if emp.AppointmentType != "" && !contains(AppointmentTypes, emp.AppointmentType) {
		issues = append(issues, ValidationIssue{
			Field:  "appointmentType",
			Reason: "unknown appointment type",
		})
	}
	if emp.FullName == "" && emp.Surname == "" && emp.FirstName == "" {
		issues = append(issues, ValidationIssue{
			Field:  "surname",
			Reason: "employee name is required",
		})
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// FullName joins surname, first and middle name, skipping blanks.
func FullName(surname, firstName, middleName string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{surname, firstName, middleName} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, " ")
}

// Normalize fills derived name fields and defaults ahead of validation.
func Normalize(emp *Employee) {
	if emp.FullName == "" {
		emp.FullName = FullName(emp.Surname, emp.FirstName, emp.MiddleName)
	}
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	if emp.AppointmentType == "" {
		emp.AppointmentType = AppointmentContract
	}
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}

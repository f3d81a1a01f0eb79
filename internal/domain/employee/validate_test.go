package employee

import (
	"errors"
	"testing"
	"time"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func validEmployee() *Employee {
	return &Employee{
		Surname:                "Okafor",
		FirstName:              "Chinedu",
		FullName:               "Okafor Chinedu",
		SalaryGradeLevel:       "7",
		Status:                 StatusActive,
		AppointmentType:        AppointmentPermanent,
		StateOfOrigin:          "enugu",
		DateFirstAppointment:   datePtr(2010, time.March, 1),
		DatePresentAppointment: datePtr(2018, time.March, 1),
	}
}

func TestValidateAcceptsValidEmployee(t *testing.T) {
	if err := Validate(validEmployee()); err != nil {
		t.Fatalf("expected valid employee, got %v", err)
	}
}

func TestValidateDateOrder(t *testing.T) {
	emp := validEmployee()
	emp.DatePresentAppointment = datePtr(2005, time.January, 1)

	err := Validate(emp)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(vErr.Issues) != 1 || vErr.Issues[0].Field != "datePresentAppointment" {
		t.Fatalf("expected datePresentAppointment issue, got %v", vErr.Issues)
	}
}

func TestValidateUnknownCodes(t *testing.T) {
	emp := validEmployee()
	emp.SalaryGradeLevel = "99"
	emp.StateOfOrigin = "atlantis"
	emp.Status = "ghosted"

	err := Validate(emp)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %v", vErr.Issues)
	}
}

func TestValidateMissingInputsAreNotErrors(t *testing.T) {
	emp := &Employee{Surname: "Bello", Status: StatusActive}
	if err := Validate(emp); err != nil {
		t.Fatalf("absent optional fields must validate, got %v", err)
	}
}

func TestFullNameConcatenation(t *testing.T) {
	if got := FullName("Okafor", "Chinedu", "Emeka"); got != "Okafor Chinedu Emeka" {
		t.Fatalf("expected full concatenation, got %q", got)
	}
	if got := FullName("Okafor", "", "Emeka"); got != "Okafor Emeka" {
		t.Fatalf("expected blanks skipped, got %q", got)
	}
	if got := FullName("", "", ""); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	emp := &Employee{Surname: "Bello", FirstName: "Amina"}
	Normalize(emp)
	if emp.FullName != "Bello Amina" {
		t.Fatalf("expected generated full name, got %q", emp.FullName)
	}
	if emp.Status != StatusActive {
		t.Fatalf("expected default active status, got %q", emp.Status)
	}
	if emp.AppointmentType != AppointmentContract {
		t.Fatalf("expected default contract appointment, got %q", emp.AppointmentType)
	}
}

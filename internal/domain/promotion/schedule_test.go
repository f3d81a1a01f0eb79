package promotion

import (
	"testing"
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

func TestEligibleForScheduleCutoff(t *testing.T) {
	today := date(2026, time.June, 1)
	employees := []employee.Employee{
		{ID: "on-cutoff", DatePresentAppointment: datePtr(2023, time.June, 1)},
		{ID: "before-cutoff", DatePresentAppointment: datePtr(2020, time.January, 1)},
		{ID: "too-recent", DatePresentAppointment: datePtr(2023, time.June, 2)},
		{ID: "no-appointment"},
	}

	ids := EligibleForSchedule(employees, 3, today)
	if len(ids) != 2 {
		t.Fatalf("expected 2 shortlisted employees, got %v", ids)
	}
	if ids[0] != "on-cutoff" || ids[1] != "before-cutoff" {
		t.Fatalf("expected [on-cutoff before-cutoff], got %v", ids)
	}
}

func TestEligibleForScheduleEmptyWorkforce(t *testing.T) {
	if ids := EligibleForSchedule(nil, 3, date(2026, time.June, 1)); len(ids) != 0 {
		t.Fatalf("expected empty shortlist, got %v", ids)
	}
}

package reports

import (
	"testing"
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestRetirementScheduleWindowAndGrouping(t *testing.T) {
	today := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	employees := []employee.Employee{
		// Retires 2027-03-10 at 60.
		{ID: "soon", FullName: "A", DateOfBirth: datePtr(1967, time.March, 10)},
		// Retires 2028-06-01 at 60.
		{ID: "later", FullName: "B", DateOfBirth: datePtr(1968, time.June, 1)},
		// Retired already (2020).
		{ID: "past", FullName: "C", DateOfBirth: datePtr(1960, time.January, 1)},
		// Retires 2040, outside the five-year horizon.
		{ID: "far", FullName: "D", DateOfBirth: datePtr(1980, time.January, 1)},
		// No birth date, no retirement fact.
		{ID: "unknown", FullName: "E"},
	}

	schedule := RetirementSchedule(employees, today)
	if len(schedule) != 2 {
		t.Fatalf("expected two retirement years, got %v", schedule)
	}
	if schedule[0].Year != 2027 || schedule[1].Year != 2028 {
		t.Fatalf("expected years [2027 2028], got %v", schedule)
	}
	if schedule[0].Rows[0].EmployeeID != "soon" {
		t.Fatalf("expected employee 'soon' in 2027, got %v", schedule[0].Rows)
	}
}

func TestGeoDistribution(t *testing.T) {
	employees := []employee.Employee{
		{ID: "1", StateOfOrigin: "lagos"},
		{ID: "2", StateOfOrigin: "ogun"},
		{ID: "3", StateOfOrigin: "kano"},
		{ID: "4"},
	}

	dist := GeoDistribution(employees, employee.GeoZones)
	if dist.TotalEmployees != 4 {
		t.Fatalf("expected total 4, got %d", dist.TotalEmployees)
	}
	if dist.ZoneCounts[employee.ZoneSouthWest] != 2 {
		t.Fatalf("expected 2 south_west, got %d", dist.ZoneCounts[employee.ZoneSouthWest])
	}
	if dist.ZoneCounts[employee.ZoneNorthWest] != 1 {
		t.Fatalf("expected 1 north_west, got %d", dist.ZoneCounts[employee.ZoneNorthWest])
	}
	if dist.StateCounts["lagos"] != 1 {
		t.Fatalf("expected 1 lagos, got %d", dist.StateCounts["lagos"])
	}
}

func TestQualificationAnalysisOrdering(t *testing.T) {
	employees := []employee.Employee{
		{Qualification: "bsc"}, {Qualification: "bsc"},
		{Qualification: "msc"}, {Qualification: "phd"},
		{Qualification: ""},
	}

	stats := QualificationAnalysis(employees)
	if len(stats) != 3 {
		t.Fatalf("expected 3 qualifications, got %v", stats)
	}
	if stats[0].Qualification != "bsc" || stats[0].Count != 2 {
		t.Fatalf("expected bsc first with count 2, got %v", stats[0])
	}
	if stats[1].Qualification != "msc" || stats[2].Qualification != "phd" {
		t.Fatalf("expected ties sorted by name, got %v", stats)
	}
}

func TestPensionComplianceReport(t *testing.T) {
	employees := []employee.Employee{
		{ID: "1", AppointmentType: employee.AppointmentPermanent, PFAName: "PFA One", RSAPin: "RSA1"},
		{ID: "2", AppointmentType: employee.AppointmentPermanent, PFAName: "PFA Two"},
		{ID: "3", AppointmentType: employee.AppointmentContract},
	}

	report := PensionComplianceReport(employees)
	if report.TotalPermanent != 2 {
		t.Fatalf("expected 2 permanent staff, got %d", report.TotalPermanent)
	}
	if report.WithPFA != 2 || report.WithoutPFA != 0 {
		t.Fatalf("unexpected PFA counts: %+v", report)
	}
	if report.WithRSA != 1 || report.WithoutRSA != 1 {
		t.Fatalf("unexpected RSA counts: %+v", report)
	}
	if len(report.MissingRSA) != 1 || report.MissingRSA[0] != "2" {
		t.Fatalf("expected employee 2 missing RSA, got %v", report.MissingRSA)
	}
}

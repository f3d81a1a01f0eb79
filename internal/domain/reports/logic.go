package reports

import (
	"sort"
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
	"github.com/taninigeria-aa/mda-hr/internal/domain/promotion"
)

// Pure report computations over already-loaded employee collections.

type RetirementRow struct {
	EmployeeID     string    `json:"employeeId"`
	EmployeeName   string    `json:"employeeName"`
	FileNumber     string    `json:"fileNumber"`
	Rank           string    `json:"rank"`
	GradeLevel     string    `json:"gradeLevel"`
	RetirementDate time.Time `json:"retirementDate"`
}

type RetirementYear struct {
	Year int             `json:"year"`
	Rows []RetirementRow `json:"rows"`
}

// RetirementSchedule lists employees retiring between today and the end of
// the fifth year ahead, grouped by retirement year.
func RetirementSchedule(employees []employee.Employee, today time.Time) []RetirementYear {
	horizon := time.Date(today.Year()+5, time.December, 31, 0, 0, 0, 0, time.UTC)

	byYear := map[int][]RetirementRow{}
	for i := range employees {
		emp := &employees[i]
		retirement := promotion.RetirementDate(emp.DateOfBirth, emp.Qualification)
		if retirement == nil || retirement.Before(today) || retirement.After(horizon) {
			continue
		}
		byYear[retirement.Year()] = append(byYear[retirement.Year()], RetirementRow{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.FullName,
			FileNumber:     emp.FileNumber,
			Rank:           emp.Rank,
			GradeLevel:     emp.SalaryGradeLevel,
			RetirementDate: *retirement,
		})
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]RetirementYear, 0, len(years))
	for _, year := range years {
		rows := byYear[year]
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].RetirementDate.Before(rows[j].RetirementDate)
		})
		out = append(out, RetirementYear{Year: year, Rows: rows})
	}
	return out
}

type Distribution struct {
	ZoneCounts     map[string]int `json:"zoneCounts"`
	StateCounts    map[string]int `json:"stateCounts"`
	TotalEmployees int            `json:"totalEmployees"`
}

// GeoDistribution counts employees per geopolitical zone and per state of
// origin. Employees without a mapped state count only toward the total.
func GeoDistribution(employees []employee.Employee, zones map[string]string) Distribution {
	dist := Distribution{
		ZoneCounts:     map[string]int{},
		StateCounts:    map[string]int{},
		TotalEmployees: len(employees),
	}
	for i := range employees {
		state := employees[i].StateOfOrigin
		if state == "" {
			continue
		}
		dist.StateCounts[state]++
		if zone := promotion.GeoZone(state, zones); zone != "" {
			dist.ZoneCounts[zone]++
		}
	}
	return dist
}

type QualificationStat struct {
	Qualification string `json:"qualification"`
	Count         int    `json:"count"`
}

// QualificationAnalysis counts employees per qualification, sorted by
// count descending then name for stable output.
func QualificationAnalysis(employees []employee.Employee) []QualificationStat {
	counts := map[string]int{}
	for i := range employees {
		if q := employees[i].Qualification; q != "" {
			counts[q]++
		}
	}
	stats := make([]QualificationStat, 0, len(counts))
	for q, n := range counts {
		stats = append(stats, QualificationStat{Qualification: q, Count: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Qualification < stats[j].Qualification
	})
	return stats
}

type PensionCompliance struct {
	TotalPermanent int      `json:"totalPermanent"`
	WithPFA        int      `json:"withPfa"`
	WithoutPFA     int      `json:"withoutPfa"`
	WithRSA        int      `json:"withRsa"`
	WithoutRSA     int      `json:"withoutRsa"`
	MissingPFA     []string `json:"missingPfa"`
	MissingRSA     []string `json:"missingRsa"`
}

// PensionComplianceReport checks permanent staff for PFA and RSA PIN
// registration; only permanent appointments are pension-relevant.
func PensionComplianceReport(employees []employee.Employee) PensionCompliance {
	var report PensionCompliance
	for i := range employees {
		emp := &employees[i]
		if emp.AppointmentType != employee.AppointmentPermanent {
			continue
		}
		report.TotalPermanent++
		if emp.PFAName != "" {
			report.WithPFA++
		} else {
			report.WithoutPFA++
			report.MissingPFA = append(report.MissingPFA, emp.ID)
		}
		if emp.RSAPin != "" {
			report.WithRSA++
		} else {
			report.WithoutRSA++
			report.MissingRSA = append(report.MissingRSA, emp.ID)
		}
	}
	return report
}

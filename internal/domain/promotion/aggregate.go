package promotion

import (
	"math"
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

// Read-only reporting projections. Both are recomputable from the employee
// and promotion-record collections alone; nothing here is persisted.

// EligibilityRow is one employee's five-criterion breakdown.
type EligibilityRow struct {
	EmployeeID            string `json:"employeeId"`
	EmployeeName          string `json:"employeeName"`
	FileNumber            string `json:"fileNumber"`
	GradeLevel            string `json:"gradeLevel"`
	Rank                  string `json:"rank"`
	Confirmed             bool   `json:"confirmed"`
	MaturityMet           bool   `json:"maturityMet"`
	NoDisciplinaryCase    bool   `json:"noDisciplinaryCase"`
	VacancyAvailable      bool   `json:"vacancyAvailable"`
	PassedExam            bool   `json:"passedExam"`
	Eligible              bool   `json:"eligible"`
	EligibilityPercentage float64 `json:"eligibilityPercentage"`
	PromotionCount        int    `json:"promotionCount"`
	PromotionState        string `json:"promotionState"`
}

// AnalysisRow joins an employee with their most recent promotion record.
type AnalysisRow struct {
	EmployeeID        string     `json:"employeeId"`
	EmployeeName      string     `json:"employeeName"`
	FileNumber        string     `json:"fileNumber"`
	CurrentGrade      string     `json:"currentGrade"`
	CurrentRank       string     `json:"currentRank"`
	AppointmentDate   *time.Time `json:"appointmentDate,omitempty"`
	PromotionCount    int        `json:"promotionCount"`
	LastPromotionDate *time.Time `json:"lastPromotionDate,omitempty"`
	NewGrade          string     `json:"newGrade,omitempty"`
	NewRank           string     `json:"newRank,omitempty"`
	EffectiveDate     *time.Time `json:"effectiveDate,omitempty"`
	PromotionState    string     `json:"promotionState"`
}

type joined struct {
	latest           *Record
	implementedCount int
}

// joinRecords indexes the records by employee: latest record by effective
// date (later input position wins ties) plus the implemented count. A
// record for an employee outside the collection is malformed input.
func joinRecords(employees []employee.Employee, records []Record) (map[string]*joined, error) {
	known := make(map[string]bool, len(employees))
	for i := range employees {
		known[employees[i].ID] = true
	}

	out := make(map[string]*joined, len(employees))
	for i := range records {
		rec := &records[i]
		if !known[rec.EmployeeID] {
			return nil, &AggregationError{RecordID: rec.ID, EmployeeID: rec.EmployeeID}
		}
		entry := out[rec.EmployeeID]
		if entry == nil {
			entry = &joined{}
			out[rec.EmployeeID] = entry
		}
		if entry.latest == nil || !rec.EffectiveDate.Before(entry.latest.EffectiveDate) {
			entry.latest = rec
		}
		if rec.State == StateImplemented {
			entry.implementedCount++
		}
	}
	return out, nil
}

// BuildEligibilityRows computes the five-criterion vector per employee and
// the share of passing criteria as a percentage rounded to two decimals.
func BuildEligibilityRows(employees []employee.Employee, records []Record, today time.Time) ([]EligibilityRow, error) {
	index, err := joinRecords(employees, records)
	if err != nil {
		return nil, err
	}

	rows := make([]EligibilityRow, 0, len(employees))
	for i := range employees {
		emp := &employees[i]
		row := EligibilityRow{
			EmployeeID:         emp.ID,
			EmployeeName:       emp.FullName,
			FileNumber:         emp.FileNumber,
			GradeLevel:         emp.SalaryGradeLevel,
			Rank:               emp.Rank,
			Confirmed:          IsConfirmed(emp.DatePresentAppointment, emp.DateConfirmed, today),
			MaturityMet:        MaturityMet(emp.DateConfirmed, emp.SalaryGradeLevel, today),
			NoDisciplinaryCase: !emp.HasDisciplinaryCase,
			VacancyAvailable:   emp.PromotionVacancyAvailable,
			PassedExam:         emp.PassedPromotionExam,
			PromotionState:     StateDraft,
		}

		passing := 0
		for _, pass := range []bool{row.Confirmed, row.MaturityMet, row.NoDisciplinaryCase, row.VacancyAvailable, row.PassedExam} {
			if pass {
				passing++
			}
		}
		row.Eligible = passing == 5
		row.EligibilityPercentage = round2(float64(passing) / 5 * 100)

		if entry := index[emp.ID]; entry != nil {
			row.PromotionCount = entry.implementedCount
			row.PromotionState = entry.latest.State
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// BuildAnalysisRows projects each employee with their latest promotion
// record and historical implemented-promotion count.
func BuildAnalysisRows(employees []employee.Employee, records []Record) ([]AnalysisRow, error) {
	index, err := joinRecords(employees, records)
	if err != nil {
		return nil, err
	}

	rows := make([]AnalysisRow, 0, len(employees))
	for i := range employees {
		emp := &employees[i]
		row := AnalysisRow{
			EmployeeID:      emp.ID,
			EmployeeName:    emp.FullName,
			FileNumber:      emp.FileNumber,
			CurrentGrade:    emp.SalaryGradeLevel,
			CurrentRank:     emp.Rank,
			AppointmentDate: emp.DatePresentAppointment,
			PromotionState:  StateDraft,
		}
		if entry := index[emp.ID]; entry != nil {
			latest := entry.latest
			effective := latest.EffectiveDate
			row.PromotionCount = entry.implementedCount
			row.LastPromotionDate = &effective
			row.NewGrade = latest.NewGradeLevel
			row.NewRank = latest.NewRank
			row.EffectiveDate = &effective
			row.PromotionState = latest.State
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

package promotion

import (
	"time"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
)

// EligibleForSchedule shortlists employees whose time in grade meets the
// schedule's threshold: the present appointment must be on or before today
// minus minYearsInGrade calendar years. The shortlist is computed at call
// time and consumed immediately; nothing is cached.
func EligibleForSchedule(employees []employee.Employee, minYearsInGrade int, today time.Time) []string {
	cutoff := today.AddDate(-minYearsInGrade, 0, 0)
	var ids []string
	for i := range employees {
		appointed := employees[i].DatePresentAppointment
		if appointed == nil {
			continue
		}
		if !appointed.After(cutoff) {
			ids = append(ids, employees[i].ID)
		}
	}
	return ids
}

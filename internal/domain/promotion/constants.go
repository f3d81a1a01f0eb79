package promotion

const (
	StateDraft       = "draft"
	StateApproved    = "approved"
	StateImplemented = "implemented"

	ScheduleStateDraft     = "draft"
	ScheduleStateScreening = "screening"
	ScheduleStateExam      = "exam"
	ScheduleStateApproval  = "approval"
	ScheduleStateClosed    = "closed"

	// MinYearsBetweenPromotions is the CONHESS rule: at least three years
	// between promotions regardless of grade.
	MinYearsBetweenPromotions = 3

	// ConfirmationYears is the service time after present appointment that
	// confirms an employee when no explicit confirmation date exists.
	ConfirmationYears = 2

	// DefaultMaturityYears applies when the grade level is missing or not
	// numeric.
	DefaultMaturityYears = 3

	RetirementAgeDefault  = 60
	RetirementAgeAdvanced = 65
)

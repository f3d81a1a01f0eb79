package promotion

import "time"

// Record is a single proposed promotion event for one employee.
type Record struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	OldGradeLevel string     `json:"oldGradeLevel"`
	OldRank       string     `json:"oldRank"`
	NewGradeLevel string     `json:"newGradeLevel"`
	NewRank       string     `json:"newRank"`
	EffectiveDate time.Time  `json:"effectiveDate"`
	ApprovalDate  *time.Time `json:"approvalDate,omitempty"`
	ApprovedBy    string     `json:"approvedBy,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	State         string     `json:"state"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// HistoryEntry is the slice of a promotion record the fact calculator needs.
type HistoryEntry struct {
	EffectiveDate time.Time `json:"effectiveDate"`
	GradeLevel    string    `json:"gradeLevel"`
	Rank          string    `json:"rank"`
	State         string    `json:"state"`
}

// Facts are the derived, time-based facts about an employee. They are
// recomputed on demand and cached on the employee row, never authoritative
// on their own.
type Facts struct {
	RetirementDate   *time.Time `json:"retirementDate,omitempty"`
	AgeOnEntry       int        `json:"ageOnEntry"`
	IsConfirmed      bool       `json:"isConfirmed"`
	MaturityYears    int        `json:"maturityYears"`
	MaturityMet      bool       `json:"maturityMet"`
	NextPromotionDue *time.Time `json:"nextPromotionDue,omitempty"`
	GeoZone          string     `json:"geoZone,omitempty"`
}

// EligibilityInput carries everything the evaluator needs about one
// employee at one instant. Today is supplied by the caller so verdicts are
// reproducible.
type EligibilityInput struct {
	GradeLevel          string
	DateConfirmed       *time.Time
	IsConfirmed         bool
	HasDisciplinaryCase bool
	VacancyAvailable    bool
	PassedExam          bool
	Today               time.Time
}

// Schedule is a batch promotion exercise: employees whose time in grade
// exceeds the threshold are shortlisted for it.
type Schedule struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	PromotionYear   int        `json:"promotionYear"`
	MinYearsInGrade int        `json:"minYearsInGrade"`
	ExamDate        *time.Time `json:"examDate,omitempty"`
	InterviewStart  *time.Time `json:"interviewStart,omitempty"`
	InterviewEnd    *time.Time `json:"interviewEnd,omitempty"`
	BoardApproval   *time.Time `json:"boardApprovalDate,omitempty"`
	EffectiveDate   *time.Time `json:"effectiveDate,omitempty"`
	State           string     `json:"state"`
	CreatedAt       time.Time  `json:"createdAt"`
}

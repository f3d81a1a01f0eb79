package employee

import "time"

type Employee struct {
	ID                        string     `json:"id"`
	FileNumber                string     `json:"fileNumber"`
	IPPIS                     string     `json:"ippis,omitempty"`
	Surname                   string     `json:"surname"`
	FirstName                 string     `json:"firstName"`
	MiddleName                string     `json:"middleName,omitempty"`
	FullName                  string     `json:"fullName"`
	Rank                      string     `json:"rank"`
	SalaryGradeLevel          string     `json:"salaryGradeLevel"`
	SalaryStructure           string     `json:"salaryStructure,omitempty"`
	AppointmentType           string     `json:"appointmentType"`
	Qualification             string     `json:"qualification,omitempty"`
	DateOfBirth               *time.Time `json:"dateOfBirth,omitempty"`
	DateFirstAppointment      *time.Time `json:"dateFirstAppointment,omitempty"`
	DatePresentAppointment    *time.Time `json:"datePresentAppointment,omitempty"`
	DateConfirmed             *time.Time `json:"dateConfirmed,omitempty"`
	RSAPin                    string     `json:"rsaPin,omitempty"`
	PFAName                   string     `json:"pfaName,omitempty"`
	StateOfOrigin             string     `json:"stateOfOrigin,omitempty"`
	LGA                       string     `json:"lga,omitempty"`
	Status                    string     `json:"status"`
	Remarks                   string     `json:"remarks,omitempty"`
	HasDisciplinaryCase       bool       `json:"hasDisciplinaryCase"`
	PassedPromotionExam       bool       `json:"passedPromotionExam"`
	PromotionExamDate         *time.Time `json:"promotionExamDate,omitempty"`
	PromotionVacancyAvailable bool       `json:"promotionVacancyAvailable"`

	// Derived facts, recomputed by the promotion engine and cached here.
	RetirementDate   *time.Time `json:"retirementDate,omitempty"`
	AgeOnEntry       int        `json:"ageOnEntry"`
	IsConfirmed      bool       `json:"isConfirmed"`
	NextPromotionDue *time.Time `json:"nextPromotionDue,omitempty"`
	GeoZone          string     `json:"geoZone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

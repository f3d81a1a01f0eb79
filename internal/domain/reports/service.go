package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/taninigeria-aa/mda-hr/internal/domain/employee"
	"github.com/taninigeria-aa/mda-hr/internal/domain/promotion"
)

type Service struct {
	employees  *employee.Store
	promotions *promotion.Store
	zones      map[string]string
}

func NewService(employees *employee.Store, promotions *promotion.Store, zones map[string]string) *Service {
	return &Service{employees: employees, promotions: promotions, zones: zones}
}

func (s *Service) loadWorkforce(ctx context.Context) ([]employee.Employee, error) {
	return s.employees.List(ctx, "", 0, 0)
}

// Eligibility is the five-criterion aggregation view over the whole
// workforce, recomputed from the employee and record collections on every
// call.
func (s *Service) Eligibility(ctx context.Context, today time.Time) ([]promotion.EligibilityRow, error) {
	workforce, err := s.loadWorkforce(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.promotions.AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return promotion.BuildEligibilityRows(workforce, records, today)
}

func (s *Service) PromotionAnalysis(ctx context.Context) ([]promotion.AnalysisRow, error) {
	workforce, err := s.loadWorkforce(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.promotions.AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return promotion.BuildAnalysisRows(workforce, records)
}

func (s *Service) Retirement(ctx context.Context, today time.Time) ([]RetirementYear, error) {
	workforce, err := s.loadWorkforce(ctx)
	if err != nil {
		return nil, err
	}
	return RetirementSchedule(workforce, today), nil
}

func (s *Service) Geographical(ctx context.Context) (Distribution, error) {
	workforce, err := s.loadWorkforce(ctx)
	if err != nil {
		return Distribution{}, err
	}
	return GeoDistribution(workforce, s.zones), nil
}

func (s *Service) Qualifications(ctx context.Context) ([]QualificationStat, error) {
	workforce, err := s.loadWorkforce(ctx)
	if err != nil {
		return nil, err
	}
	return QualificationAnalysis(workforce), nil
}

func (s *Service) Pension(ctx context.Context) (PensionCompliance, error) {
	workforce, err := s.loadWorkforce(ctx)
	if err != nil {
		return PensionCompliance{}, err
	}
	return PensionComplianceReport(workforce), nil
}

// EligibilityPDF renders the eligibility report as a printable document.
func (s *Service) EligibilityPDF(ctx context.Context, today time.Time) ([]byte, error) {
	rows, err := s.Eligibility(ctx, today)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Promotion Eligibility Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", today.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	headers := []struct {
		label string
		width float64
	}{
		{"Name", 60}, {"File No", 25}, {"Grade", 15}, {"Rank", 45},
		{"Confirmed", 20}, {"Maturity", 20}, {"Discipline", 20},
		{"Vacancy", 20}, {"Exam", 15}, {"Eligible", 18}, {"%", 15},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.CellFormat(60, 7, row.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, row.FileNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, row.GradeLevel, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, row.Rank, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, yesNo(row.Confirmed), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, yesNo(row.MaturityMet), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, yesNo(row.NoDisciplinaryCase), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, yesNo(row.VacancyAvailable), "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 7, yesNo(row.PassedExam), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 7, yesNo(row.Eligible), "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%.2f", row.EligibilityPercentage), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RetirementPDF renders the retirement schedule grouped by year.
func (s *Service) RetirementPDF(ctx context.Context, today time.Time) ([]byte, error) {
	schedule, err := s.Retirement(ctx, today)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Retirement Schedule")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", today.Format("2006-01-02")))
	pdf.Ln(10)

	for _, year := range schedule {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, fmt.Sprintf("%d", year.Year))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		for _, row := range year.Rows {
			pdf.CellFormat(70, 7, row.EmployeeName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, row.FileNumber, "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 7, row.GradeLevel, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, row.RetirementDate.Format("2006-01-02"), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"onboardhub/internal/domain/onboarding"
)

// RenderSummaryPDF writes a one-employee onboarding summary.
func RenderSummaryPDF(emp onboarding.Employee, now time.Time) (*bytes.Buffer, error) {
	progress := onboarding.BuildProgress(emp, now)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Onboarding summary: "+emp.Name), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Onboarding Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Employee: %s", emp.Name),
		fmt.Sprintf("Email: %s", emp.Email),
		fmt.Sprintf("Department: %s / %s", emp.Department, emp.Role),
		fmt.Sprintf("Start date: %s", dateLabel(emp.StartDate)),
		fmt.Sprintf("Completion: %d%%", progress.CompletionPercent),
	}
	if emp.Manager != "" {
		lines = append(lines, fmt.Sprintf("Manager: %s", emp.Manager))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	section := func(title string, count onboarding.CategoryCount, header []string, widths []float64, rows [][]string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("%s (%d/%d)", title, count.Done, count.Total))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "B", 10)
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range rows {
			for i, v := range row {
				pdf.CellFormat(widths[i], 6, tr(v), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	var rows [][]string
	for _, d := range emp.Documents {
		rows = append(rows, []string{d.Name, string(d.Status), string(d.Priority), d.VerifiedBy})
	}
	section("Documents", progress.Documents, []string{"Document", "Status", "Priority", "Verified by"}, []float64{75, 30, 30, 45}, rows)

	rows = nil
	for _, t := range emp.Tasks {
		rows = append(rows, []string{t.Name, string(t.Status), t.Category, dateLabel(t.DueDate)})
	}
	section("Tasks", progress.Tasks, []string{"Task", "Status", "Category", "Due"}, []float64{75, 30, 40, 35}, rows)

	rows = nil
	for _, it := range emp.Equipment {
		assigned := "-"
		if it.AssignedAt != nil {
			assigned = dateLabel(*it.AssignedAt)
		}
		rows = append(rows, []string{it.Name, string(it.Status), it.SerialNumber, assigned})
	}
	section("Equipment", progress.Equipment, []string{"Item", "Status", "Serial", "Assigned"}, []float64{75, 30, 40, 35}, rows)

	rows = nil
	for _, c := range emp.Compliance {
		rows = append(rows, []string{c.Name, string(c.Status), c.Duration, dateLabel(c.DueDate)})
	}
	section("Compliance", progress.Compliance, []string{"Module", "Status", "Duration", "Due"}, []float64{75, 30, 40, 35}, rows)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render summary pdf: %w", err)
	}
	return buf, nil
}

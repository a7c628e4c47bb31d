package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"onboardhub/internal/domain/onboarding"
)

const rosterSheet = "Roster"

var rosterColumns = []struct {
	title string
	width float64
}{
	{"Name", 22},
	{"Email", 28},
	{"Department", 18},
	{"Role", 22},
	{"Manager", 18},
	{"Start Date", 12},
	{"Completion %", 13},
	{"Documents Verified", 18},
	{"Tasks Completed", 16},
	{"Equipment Assigned", 18},
	{"Training Completed", 18},
	{"Overdue Training", 16},
}

// RenderRosterXLSX writes one row per employee in insertion order.
func RenderRosterXLSX(emps []onboarding.Employee, now time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(rosterSheet)
	if err != nil {
		return nil, fmt.Errorf("create roster sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, col := range rosterColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(rosterSheet, name, name, col.width)
		f.SetCellValue(rosterSheet, cell(name, 1), col.title)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(rosterColumns))
	f.SetCellStyle(rosterSheet, "A1", cell(lastCol, 1), headerStyle)

	for i, e := range emps {
		p := onboarding.BuildProgress(e, now)
		values := []any{
			e.Name,
			e.Email,
			e.Department,
			e.Role,
			e.Manager,
			dateLabel(e.StartDate),
			p.CompletionPercent,
			ratio(p.Documents),
			ratio(p.Tasks),
			ratio(p.Equipment),
			ratio(p.Compliance),
			p.OverdueCompliance,
		}
		for j, v := range values {
			name, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(rosterSheet, cell(name, i+2), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write roster: %w", err)
	}
	return buf, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func ratio(c onboarding.CategoryCount) string {
	return fmt.Sprintf("%d/%d", c.Done, c.Total)
}

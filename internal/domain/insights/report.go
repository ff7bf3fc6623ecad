package insights

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ProductivityReportPDF renders the scored roster as a printable report.
func ProductivityReportPDF(orgName string, rows []EmployeeScore, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Productivity Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Organization: %s", orgName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(55, 8, "Employee", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Role", "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 8, "Score", "1", 0, "R", false, 0, "")
	pdf.CellFormat(15, 8, "Grade", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Completed", "1", 0, "R", false, 0, "")
	pdf.CellFormat(22, 8, "Overdue", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(55, 7, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, row.Role, "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 7, fmt.Sprintf("%d", row.Score), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, 7, row.Grade, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d/%d", row.Stats.Completed, row.Stats.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 7, fmt.Sprintf("%d", row.Stats.Overdue), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

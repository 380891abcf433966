package controller

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
)

// Helper function to format full name
func formatFullName(f, m, l string) string {
	full := f
	if m != "" {
		full += " " + m
	}
	full += " " + l
	return full
}

func orDash(s string) string {
	if !engine.IsSet(s) {
		return "-"
	}
	return s
}

// ExportAttendanceSheetToPDF renders one assignment's daily time record as a
// printable sheet.
func ExportAttendanceSheetToPDF(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	var assignment model.InternshipAssignment
	err := middleware.DBConn.
		Preload("Student").
		Preload("Student.User").
		Preload("Company").
		First(&assignment, "id = ?", assignmentID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Assignment not found")
	}

	var records []model.AttendanceRecord
	err = middleware.DBConn.
		Where("assignment_id = ?", assignment.ID).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("Failed to fetch attendance: %v", err))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Daily Time Record", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	user := assignment.Student.User
	pdf.CellFormat(0, 6, "Intern: "+formatFullName(user.FirstName, user.MiddleName, user.LastName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Company: "+assignment.Company.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Required Hours: %.1f", assignment.TotalRequiredHours), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Arial", "B", 9)
	headers := []string{"Date", "AM In", "AM Out", "PM In", "PM Out", "Hours", "Verification"}
	widths := []float64{28, 24, 24, 24, 24, 20, 28}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	engineRecords := make([]engine.Record, 0, len(records))
	for _, r := range records {
		row := []string{
			r.Date,
			orDash(r.AMTimeIn),
			orDash(r.AMTimeOut),
			orDash(r.PMTimeIn),
			orDash(r.PMTimeOut),
			fmt.Sprintf("%.2f", r.TotalHours),
			r.VerificationStatus,
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		engineRecords = append(engineRecords, engineRecord(r))
	}

	accumulated := engine.AccumulatedHours(engineRecords)
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Accumulated: %.2f hours", accumulated), "", 1, "L", false, 0, "")

	remaining, err := engine.ComputeRemaining(assignment.TotalRequiredHours, accumulated)
	if errors.Is(err, engine.ErrMissingRequiredTotal) {
		pdf.CellFormat(0, 6, "Remaining: not tracked", "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, fmt.Sprintf("Remaining: %.2f hours (%d days)", remaining.Hours, remaining.Days), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("Failed to generate PDF: %v", err))
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="dtr-%s.pdf"`, assignmentID))
	return c.Send(buf.Bytes())
}

package controller

import (
	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"

	"github.com/gofiber/fiber/v2"
)

type AttendanceSummary struct {
	AssignmentID       uint    `json:"assignment_id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	StudentNumber      string  `json:"student_number"`
	AMTimeIn           *string `json:"am_time_in"`
	AMTimeOut          *string `json:"am_time_out"`
	PMTimeIn           *string `json:"pm_time_in"`
	PMTimeOut          *string `json:"pm_time_out"`
	AMStatus           string  `json:"am_status"`
	PMStatus           string  `json:"pm_status"`
	TotalHours         float64 `json:"total_hours"`
	VerificationStatus string  `json:"verification_status"`
	Status             string  `json:"status"` // Present, Half-Day-AM, Half-Day-PM, Excused, Absent
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetAttendanceSummary groups a company's attendance for one date by the
// derived session states.
func GetAttendanceSummary(c *fiber.Ctx) error {
	companyID := c.Params("company_id")
	date := c.Params("date") // Format: YYYY-MM-DD

	var records []AttendanceSummary

	err := middleware.DBConn.Table("attendance_records").
		Select(`attendance_records.assignment_id, users.first_name, users.last_name, students.student_number,
			attendance_records.am_time_in, attendance_records.am_time_out,
			attendance_records.pm_time_in, attendance_records.pm_time_out,
			attendance_records.am_status, attendance_records.pm_status,
			attendance_records.total_hours, attendance_records.verification_status`).
		Joins("JOIN internship_assignments ON attendance_records.assignment_id = internship_assignments.id").
		Joins("JOIN students ON internship_assignments.student_id = students.id").
		Joins("JOIN users ON users.id = students.user_id").
		Where("internship_assignments.company_id = ? AND attendance_records.date = ?", companyID, date).
		Scan(&records).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attendance",
		})
	}

	var present []AttendanceSummary
	var halfDayAM []AttendanceSummary
	var halfDayPM []AttendanceSummary
	var excused []AttendanceSummary
	var absent []AttendanceSummary

	for _, record := range records {
		rec := engine.Record{
			AMTimeIn: deref(record.AMTimeIn), AMTimeOut: deref(record.AMTimeOut),
			PMTimeIn: deref(record.PMTimeIn), PMTimeOut: deref(record.PMTimeOut),
			AMStatus: engine.Mark(record.AMStatus), PMStatus: engine.Mark(record.PMStatus),
		}
		am := engine.Classify(rec, engine.SessionAM)
		pm := engine.Classify(rec, engine.SessionPM)

		switch {
		case am == engine.StateCompleted && pm == engine.StateCompleted:
			record.Status = "Present"
			present = append(present, record)
		case am == engine.StateCompleted:
			record.Status = "Half-Day-AM"
			halfDayAM = append(halfDayAM, record)
		case pm == engine.StateCompleted:
			record.Status = "Half-Day-PM"
			halfDayPM = append(halfDayPM, record)
		case am == engine.StateExcused || pm == engine.StateExcused:
			record.Status = "Excused"
			excused = append(excused, record)
		default:
			record.Status = "Absent"
			absent = append(absent, record)
		}
	}

	return c.JSON(fiber.Map{
		"date":              date,
		"present":           present,
		"half_day_am":       halfDayAM,
		"half_day_pm":       halfDayPM,
		"excused":           excused,
		"absent":            absent,
		"total_records":     len(records),
		"total_present":     len(present),
		"total_half_day_am": len(halfDayAM),
		"total_half_day_pm": len(halfDayPM),
		"total_excused":     len(excused),
		"total_absent":      len(absent),
	})
}

package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// engineRecord maps a stored attendance row onto the plain-data view the
// engine computes over.
func engineRecord(r model.AttendanceRecord) engine.Record {
	return engine.Record{
		AMTimeIn:   r.AMTimeIn,
		AMTimeOut:  r.AMTimeOut,
		PMTimeIn:   r.PMTimeIn,
		PMTimeOut:  r.PMTimeOut,
		AMStatus:   engine.Mark(r.AMStatus),
		PMStatus:   engine.Mark(r.PMStatus),
		TotalHours: r.TotalHours,
	}
}

func policyFromWorkingHours(wh model.WorkingHours) engine.Policy {
	return engine.Policy{
		Start:      engine.ClockTime{Time: wh.StartTime, Period: wh.StartPeriod},
		End:        engine.ClockTime{Time: wh.EndTime, Period: wh.EndPeriod},
		BreakStart: engine.ClockTime{Time: wh.BreakStartTime, Period: wh.BreakStartPeriod},
		BreakEnd:   engine.ClockTime{Time: wh.BreakEndTime, Period: wh.BreakEndPeriod},
	}
}

func companyPolicy(companyID uint) (engine.Policy, error) {
	var wh model.WorkingHours
	if err := middleware.DBConn.Where("company_id = ?", companyID).First(&wh).Error; err != nil {
		return engine.Policy{}, err
	}
	return policyFromWorkingHours(wh), nil
}

func manilaNow() time.Time {
	loc, _ := time.LoadLocation("Asia/Manila")
	return time.Now().In(loc)
}

// nowMinutes is the wall clock as a minute offset since midnight.
func nowMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func activeAssignment(id string) (model.InternshipAssignment, error) {
	var assignment model.InternshipAssignment
	if err := middleware.DBConn.First(&assignment, "id = ?", id).Error; err != nil {
		return assignment, err
	}
	if assignment.FinishedAt != nil {
		return assignment, fiber.NewError(fiber.StatusConflict, "Internship is already finished")
	}
	return assignment, nil
}

// recomputeTotal refreshes the stored daily total from the session stamps.
func recomputeTotal(record *model.AttendanceRecord) error {
	hours, err := engine.DailyHours(engineRecord(*record))
	if err != nil {
		return err
	}
	record.TotalHours = hours
	return nil
}

// SubmitAttendance upserts the attendance record a student submits for one
// day. A same-day resubmission supersedes the stored row and goes back to
// pending verification.
func SubmitAttendance(c *fiber.Ctx) error {
	type SubmitRequest struct {
		AssignmentID uint   `json:"assignment_id" validate:"required"`
		Date         string `json:"date" validate:"required"`
		AMTimeIn     string `json:"am_time_in"`
		AMTimeOut    string `json:"am_time_out"`
		PMTimeIn     string `json:"pm_time_in"`
		PMTimeOut    string `json:"pm_time_out"`
		AMStatus     string `json:"am_status"`
		PMStatus     string `json:"pm_status"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}
	if err := middleware.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields", "error": err.Error()})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date format. Use YYYY-MM-DD."})
	}

	assignment, err := activeAssignment(fmt.Sprint(req.AssignmentID))
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Assignment not found"})
	}

	if req.AMStatus == "" {
		req.AMStatus = string(engine.MarkNotMarked)
	}
	if req.PMStatus == "" {
		req.PMStatus = string(engine.MarkNotMarked)
	}

	record := model.AttendanceRecord{
		AssignmentID:       assignment.ID,
		Date:               req.Date,
		AMTimeIn:           req.AMTimeIn,
		AMTimeOut:          req.AMTimeOut,
		PMTimeIn:           req.PMTimeIn,
		PMTimeOut:          req.PMTimeOut,
		AMStatus:           req.AMStatus,
		PMStatus:           req.PMStatus,
		VerificationStatus: "pending",
	}

	if err := recomputeTotal(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Malformed time entry", "error": err.Error()})
	}

	// Upsert by (assignment, date): a resubmission replaces the stored day.
	err = middleware.DBConn.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assignment_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"am_time_in", "am_time_out", "pm_time_in", "pm_time_out",
			"am_status", "pm_status", "total_hours", "verification_status",
		}),
	}).Create(&record).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save attendance", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Attendance successfully saved.",
		Data:    record,
	})
}

// ClockIn stamps the current time into the active session window for the
// assignment. Blocked whenever the entry rule says the control is disabled.
func ClockIn(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	assignment, err := activeAssignment(assignmentID)
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Assignment not found"})
	}

	policy, err := companyPolicy(assignment.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Company working hours are not configured"})
	}

	now := manilaNow()
	today := now.Format("2006-01-02")

	var record model.AttendanceRecord
	err = middleware.DBConn.Where("assignment_id = ? AND date = ?", assignment.ID, today).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = model.AttendanceRecord{
			AssignmentID:       assignment.ID,
			Date:               today,
			AMStatus:           string(engine.MarkNotMarked),
			PMStatus:           string(engine.MarkNotMarked),
			VerificationStatus: "pending",
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error", "error": err.Error()})
	}

	disabled, err := engine.EntryDisabled(engineRecord(record), policy, nowMinutes(now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Invalid working hours", "error": err.Error()})
	}
	if disabled {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Time entry is not available right now",
		})
	}

	session, _, err := policy.CurrentSession(nowMinutes(now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Invalid working hours", "error": err.Error()})
	}

	stamp := engine.FormatStamp(nowMinutes(now))
	if session == engine.SessionAM {
		record.AMTimeIn = stamp
	} else {
		record.PMTimeIn = stamp
	}

	if err := middleware.DBConn.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save time in", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: fmt.Sprintf("Time in recorded for the %s session", session),
		Data:    record,
	})
}

// ClockOut closes the in-progress session and refreshes the daily total.
func ClockOut(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	assignment, err := activeAssignment(assignmentID)
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Assignment not found"})
	}

	now := manilaNow()
	today := now.Format("2006-01-02")

	var record model.AttendanceRecord
	if err := middleware.DBConn.Where("assignment_id = ? AND date = ?", assignment.ID, today).First(&record).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No attendance entry for today"})
	}

	rec := engineRecord(record)
	stamp := engine.FormatStamp(nowMinutes(now))

	switch {
	case engine.Classify(rec, engine.SessionAM) == engine.StateInProgress:
		record.AMTimeOut = stamp
	case engine.Classify(rec, engine.SessionPM) == engine.StateInProgress:
		record.PMTimeOut = stamp
	default:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "No session is in progress"})
	}

	if err := recomputeTotal(&record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to compute hours", "error": err.Error()})
	}

	if err := middleware.DBConn.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save time out", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Time out recorded",
		Data:    record,
	})
}

// EntryStatus tells the client whether the submit control should be enabled
// and what state each session is in right now.
func EntryStatus(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	var assignment model.InternshipAssignment
	if err := middleware.DBConn.First(&assignment, "id = ?", assignmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Assignment not found"})
	}

	policy, err := companyPolicy(assignment.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Company working hours are not configured"})
	}

	now := manilaNow()
	var record model.AttendanceRecord
	err = middleware.DBConn.Where("assignment_id = ? AND date = ?", assignment.ID, now.Format("2006-01-02")).First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error", "error": err.Error()})
	}
	if record.AMStatus == "" {
		record.AMStatus = string(engine.MarkNotMarked)
	}
	if record.PMStatus == "" {
		record.PMStatus = string(engine.MarkNotMarked)
	}

	rec := engineRecord(record)
	disabled := assignment.FinishedAt != nil
	if !disabled {
		disabled, err = engine.EntryDisabled(rec, policy, nowMinutes(now))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Invalid working hours", "error": err.Error()})
		}
	}

	session, active, err := policy.CurrentSession(nowMinutes(now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Invalid working hours", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"entry_disabled":  disabled,
		"session_active":  active,
		"current_session": session,
		"am_state":        engine.Classify(rec, engine.SessionAM),
		"pm_state":        engine.Classify(rec, engine.SessionPM),
	})
}

// VerifyAttendance accepts or denies a submitted record. Whichever operator
// writes last wins; the client re-fetches after every mutation.
func VerifyAttendance(c *fiber.Ctx) error {
	recordID := c.Params("id")

	type VerifyRequest struct {
		Status string `json:"status" validate:"required,oneof=accepted denied"`
	}

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request"})
	}
	if err := middleware.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Status must be accepted or denied"})
	}

	var record model.AttendanceRecord
	if err := middleware.DBConn.First(&record, "id = ?", recordID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Attendance record not found"})
	}

	if err := middleware.DBConn.Model(&record).Update("verification_status", req.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update record", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Attendance record " + req.Status,
		Data:    record,
	})
}

// GetCompanyAttendance lists records for a company, optionally bounded by
// ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func GetCompanyAttendance(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	query := middleware.DBConn.
		Joins("JOIN internship_assignments ON internship_assignments.id = attendance_records.assignment_id").
		Where("internship_assignments.company_id = ?", companyID).
		Preload("Assignment.Student.User")

	if from := c.Query("from"); from != "" {
		query = query.Where("attendance_records.date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("attendance_records.date <= ?", to)
	}

	var records []model.AttendanceRecord
	if err := query.Order("attendance_records.date DESC").Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch attendance", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Attendance records fetched.",
		Data:    records,
	})
}

// GetInternAttendance lists every record of one assignment, newest first.
func GetInternAttendance(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	var records []model.AttendanceRecord
	err := middleware.DBConn.
		Where("assignment_id = ?", assignmentID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch attendance", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Attendance records fetched.",
		Data:    records,
	})
}

// InternProgress reports accumulated hours and the remaining capacity
// against the assignment's required total. With no total configured,
// capacity tracking is flagged off instead of failing.
func InternProgress(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	var assignment model.InternshipAssignment
	if err := middleware.DBConn.First(&assignment, "id = ?", assignmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Assignment not found"})
	}

	var records []model.AttendanceRecord
	if err := middleware.DBConn.Where("assignment_id = ?", assignment.ID).Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch attendance", "error": err.Error()})
	}

	engineRecords := make([]engine.Record, len(records))
	for i, r := range records {
		engineRecords[i] = engineRecord(r)
	}
	accumulated := engine.AccumulatedHours(engineRecords)

	result := fiber.Map{
		"assignment_id":     assignment.ID,
		"accumulated_hours": accumulated,
		"required_hours":    assignment.TotalRequiredHours,
	}

	remaining, err := engine.ComputeRemaining(assignment.TotalRequiredHours, accumulated)
	if errors.Is(err, engine.ErrMissingRequiredTotal) {
		result["capacity_tracking"] = false
	} else {
		result["capacity_tracking"] = true
		result["remaining"] = remaining
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Progress computed.",
		Data:    result,
	})
}

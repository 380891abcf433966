package controller

import (
	"errors"
	"fmt"

	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScanQRCode resolves a scanned payload to its assignment and stamps the
// clock: first scan inside a session window is the time in, the next one the
// time out. Scans outside both windows are rejected.
func ScanQRCode(c *fiber.Ctx) error {
	type ScanRequest struct {
		Payload string `json:"payload" validate:"required"`
	}

	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid JSON format",
			"error":   err.Error(),
		})
	}
	if err := middleware.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "QR payload is required"})
	}

	var qr model.QRCode
	if err := middleware.DBConn.Where("payload = ?", req.Payload).First(&qr).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unknown QR code"})
	}

	assignment, err := activeAssignment(fmt.Sprint(qr.AssignmentID))
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
	session, active, err := policy.CurrentSession(nowMinutes(now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Invalid working hours", "error": err.Error()})
	}
	if !active {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Outside working hours; scan not recorded"})
	}

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

	stamp := engine.FormatStamp(nowMinutes(now))
	var action string

	switch engine.Classify(engineRecord(record), session) {
	case engine.StateNotStarted:
		if session == engine.SessionAM {
			record.AMTimeIn = stamp
		} else {
			record.PMTimeIn = stamp
		}
		action = "time in"
	case engine.StateInProgress:
		if session == engine.SessionAM {
			record.AMTimeOut = stamp
		} else {
			record.PMTimeOut = stamp
		}
		action = "time out"
		if err := recomputeTotal(&record); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to compute hours", "error": err.Error()})
		}
	default:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Session already resolved for today",
		})
	}

	if err := middleware.DBConn.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save scan", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Scan recorded: " + action,
		Data: fiber.Map{
			"session": session,
			"action":  action,
			"record":  record,
		},
	})
}

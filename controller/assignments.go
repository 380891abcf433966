package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
)

// GetCompanyAssignments lists a company's assignments; ?active=true keeps
// only the ones still running.
func GetCompanyAssignments(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	query := middleware.DBConn.
		Preload("Student").
		Preload("Student.User").
		Where("company_id = ?", companyID)

	if c.Query("active") == "true" {
		query = query.Where("finished_at IS NULL")
	}

	var assignments []model.InternshipAssignment
	if err := query.Find(&assignments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch assignments", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Assignments fetched.",
		Data:    assignments,
	})
}

// finishGuard checks the finish preconditions for one assignment: no record
// left in pending or denied verification, and no remaining required hours.
func finishGuard(assignment model.InternshipAssignment) error {
	if assignment.FinishedAt != nil {
		return fmt.Errorf("assignment %d is already finished", assignment.ID)
	}

	var unresolved int64
	err := middleware.DBConn.Model(&model.AttendanceRecord{}).
		Where("assignment_id = ? AND verification_status IN ?", assignment.ID, []string{"pending", "denied"}).
		Count(&unresolved).Error
	if err != nil {
		return err
	}
	if unresolved > 0 {
		return fmt.Errorf("assignment %d has %d unresolved attendance records", assignment.ID, unresolved)
	}

	var records []model.AttendanceRecord
	if err := middleware.DBConn.Where("assignment_id = ?", assignment.ID).Find(&records).Error; err != nil {
		return err
	}
	engineRecords := make([]engine.Record, len(records))
	for i, r := range records {
		engineRecords[i] = engineRecord(r)
	}

	remaining, err := engine.ComputeRemaining(assignment.TotalRequiredHours, engine.AccumulatedHours(engineRecords))
	if err != nil {
		return fmt.Errorf("assignment %d has no required hours configured", assignment.ID)
	}
	if remaining.Hours > 0 {
		return fmt.Errorf("assignment %d still has %.1f hours remaining", assignment.ID, remaining.Hours)
	}
	return nil
}

// FinishAssignments closes one or more assignments (comma-separated IDs).
// Each assignment is checked independently; failures are collected and the
// rest proceed, the same way bulk archive actions behave elsewhere.
func FinishAssignments(c *fiber.Ctx) error {
	assignmentIDs := c.Params("ids")
	if assignmentIDs == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Assignment IDs are required",
		})
	}

	idList := strings.Split(assignmentIDs, ",")
	now := time.Now()

	var finished []uint
	var errs []string

	for _, id := range idList {
		var assignment model.InternshipAssignment
		if err := middleware.DBConn.First(&assignment, "id = ?", id).Error; err != nil {
			errs = append(errs, fmt.Sprintf("Assignment ID %s not found", id))
			continue
		}

		if err := finishGuard(assignment); err != nil {
			errs = append(errs, err.Error())
			continue
		}

		if err := middleware.DBConn.Model(&assignment).Update("finished_at", now).Error; err != nil {
			errs = append(errs, fmt.Sprintf("Failed to finish assignment ID %s", id))
			continue
		}
		finished = append(finished, assignment.ID)
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":  "Some assignments could not be finished",
			"finished": finished,
			"errors":   errs,
		})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Assignments successfully finished.",
		Data:    finished,
	})
}

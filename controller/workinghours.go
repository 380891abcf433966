package controller

import (
	"errors"

	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkingHoursRequest struct {
	Start      engine.ClockTime `json:"start"`
	End        engine.ClockTime `json:"end"`
	BreakStart engine.ClockTime `json:"break_start"`
	BreakEnd   engine.ClockTime `json:"break_end"`
}

// SetWorkingHours creates or replaces a company's daily schedule. The
// schedule is rejected with the specific rule it breaks, never silently
// defaulted.
func SetWorkingHours(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var company model.Company
	if err := middleware.DBConn.First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Company not found"})
	}

	var req WorkingHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}

	policy := engine.Policy{
		Start:      req.Start,
		End:        req.End,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	}
	if err := policy.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response.ResponseModel{
			RetCode: "400",
			Message: "Invalid working hours",
			Data:    err.Error(),
		})
	}

	wh := model.WorkingHours{
		CompanyID:        company.ID,
		StartTime:        req.Start.Time,
		StartPeriod:      req.Start.Period,
		EndTime:          req.End.Time,
		EndPeriod:        req.End.Period,
		BreakStartTime:   req.BreakStart.Time,
		BreakStartPeriod: req.BreakStart.Period,
		BreakEndTime:     req.BreakEnd.Time,
		BreakEndPeriod:   req.BreakEnd.Period,
	}

	err := middleware.DBConn.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_time", "start_period", "end_time", "end_period",
			"break_start_time", "break_start_period", "break_end_time", "break_end_period",
		}),
	}).Create(&wh).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save working hours", "error": err.Error()})
	}

	requiredMinutes, err := policy.RequiredDailyMinutes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to compute required minutes", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Working hours saved.",
		Data: fiber.Map{
			"working_hours":          wh,
			"required_daily_minutes": requiredMinutes,
		},
	})
}

// GetWorkingHours returns the stored schedule plus the derived required
// daily minutes.
func GetWorkingHours(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var wh model.WorkingHours
	err := middleware.DBConn.Where("company_id = ?", companyID).First(&wh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(response.ResponseModel{
			RetCode: "404",
			Message: "Working hours not configured",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error", "error": err.Error()})
	}

	policy := policyFromWorkingHours(wh)
	requiredMinutes, err := policy.RequiredDailyMinutes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Stored working hours are malformed", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Working hours fetched.",
		Data: fiber.Map{
			"working_hours":          wh,
			"required_daily_minutes": requiredMinutes,
		},
	})
}

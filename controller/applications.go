package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bjorndimsey/internshipgo-server/config"
	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCompanyApplications lists applications for a company, optionally
// filtered by ?status=pending|approved|rejected.
func GetCompanyApplications(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	query := middleware.DBConn.
		Preload("Student").
		Preload("Student.User").
		Where("company_id = ?", companyID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []model.Application
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch applications", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Applications fetched.",
		Data:    applications,
	})
}

// UpdateApplicationStatus approves or rejects an application. Approval also
// opens the internship assignment with the required-hours total the
// coordinator configured (free text, e.g. "136 hours").
func UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID := c.Params("id")

	type StatusRequest struct {
		Status        string `json:"status" validate:"required,oneof=approved rejected"`
		RequiredHours string `json:"required_hours"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}
	if err := middleware.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Status must be approved or rejected"})
	}

	var application model.Application
	if err := middleware.DBConn.Preload("Student").Preload("Student.User").First(&application, "id = ?", applicationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Application not found"})
	}

	var assignment *model.InternshipAssignment
	err := middleware.DBConn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&application).Update("status", req.Status).Error; err != nil {
			return err
		}
		if req.Status != "approved" {
			return nil
		}

		requiredHours, err := engine.ParseRequiredHours(req.RequiredHours)
		if errors.Is(err, engine.ErrMissingRequiredTotal) {
			// Capacity tracking stays off until a total is configured.
			requiredHours = 0
		} else if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		assignment = &model.InternshipAssignment{
			StudentID:          application.StudentID,
			CompanyID:          application.CompanyID,
			ApplicationID:      application.ID,
			TotalRequiredHours: requiredHours,
			StartedAt:          time.Now(),
		}
		return tx.Create(assignment).Error
	})
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update application", "error": err.Error()})
	}

	notifyApplicant(application, req.Status)

	data := fiber.Map{"application": application}
	if assignment != nil {
		data["assignment"] = assignment
	}
	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Application " + req.Status,
		Data:    data,
	})
}

// notifyApplicant pushes and emails the decision. Delivery failures are
// logged, never surfaced; the status update already committed.
func notifyApplicant(application model.Application, status string) {
	title := "Application update"
	body := fmt.Sprintf("Your internship application for %q has been %s.", application.Position, status)

	if token := application.Student.FCMToken; token != "" {
		if err := SendPushNotification(token, title, body); err != nil {
			log.Println("push notification failed:", err)
		}
	}

	if email := application.Student.User.Email; email != "" {
		if err := config.SendMail(email, title, body); err != nil {
			log.Println("notification email failed:", err)
		}
	}
}

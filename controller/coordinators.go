package controller

import (
	"errors"

	"github.com/bjorndimsey/internshipgo-server/engine"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// partnershipView is one coordinator row as the company portal renders it.
type partnershipView struct {
	PartnershipID       uint                     `json:"partnership_id"`
	CoordinatorID       uint                     `json:"coordinator_id"`
	FirstName           string                   `json:"first_name"`
	LastName            string                   `json:"last_name"`
	SchoolName          string                   `json:"school_name"`
	Program             string                   `json:"program"`
	CompanyApproved     bool                     `json:"company_approved"`
	CoordinatorApproved bool                     `json:"coordinator_approved"`
	MOAStatus           string                   `json:"moa_status"`
	MOAURL              string                   `json:"moa_url"`
	MOASent             bool                     `json:"moa_sent"`
	Status              engine.PartnershipStatus `json:"status"`
}

func viewOf(p model.Partnership, user model.User, coord model.Coordinator) partnershipView {
	moaSent := engine.MOASent(p.MOAStatus, p.MOAURL)
	return partnershipView{
		PartnershipID:       p.ID,
		CoordinatorID:       coord.ID,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		SchoolName:          coord.SchoolName,
		Program:             coord.Program,
		CompanyApproved:     p.CompanyApproved,
		CoordinatorApproved: p.CoordinatorApproved,
		MOAStatus:           p.MOAStatus,
		MOAURL:              p.MOAURL,
		MOASent:             moaSent,
		Status:              engine.ResolvePartnership(p.CompanyApproved, p.CoordinatorApproved, moaSent),
	}
}

// GetCompanyCoordinators lists every coordinator linked to the company with
// the resolved partnership status.
func GetCompanyCoordinators(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var partnerships []model.Partnership
	err := middleware.DBConn.
		Preload("Coordinator").
		Where("company_id = ?", companyID).
		Find(&partnerships).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch coordinators", "error": err.Error()})
	}

	views := make([]partnershipView, 0, len(partnerships))
	for _, p := range partnerships {
		var user model.User
		if err := middleware.DBConn.First(&user, "id = ?", p.Coordinator.UserID).Error; err != nil {
			continue
		}
		views = append(views, viewOf(p, user, p.Coordinator))
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Coordinators fetched.",
		Data:    views,
	})
}

// LinkCoordinator creates the partnership row for a coordinator. Both
// approval flags start false.
func LinkCoordinator(c *fiber.Ctx) error {
	type LinkRequest struct {
		CompanyID     uint `json:"company_id" validate:"required"`
		CoordinatorID uint `json:"coordinator_id" validate:"required"`
	}

	var req LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}
	if err := middleware.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Company and coordinator are required"})
	}

	partnership := model.Partnership{
		CompanyID:     req.CompanyID,
		CoordinatorID: req.CoordinatorID,
		MOAStatus:     "draft",
	}
	if err := middleware.DBConn.Create(&partnership).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Partnership already exists or references are invalid", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Coordinator linked.",
		Data:    partnership,
	})
}

// UpdatePartnershipApproval flips one side's approval flag. The body may
// carry the flags in any of the upstream serializations (true/1/"true"/"1"),
// so they go through the loose coercion before they touch the row.
func UpdatePartnershipApproval(c *fiber.Ctx) error {
	partnershipID := c.Params("id")

	// Flags arrive as bool, number, or string depending on the caller.
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}

	var partnership model.Partnership
	if err := middleware.DBConn.First(&partnership, "id = ?", partnershipID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Partnership not found"})
	}

	updates := map[string]interface{}{}
	if raw, ok := body["company_approved"]; ok {
		updates["company_approved"] = engine.CoerceBool(raw)
	}
	if raw, ok := body["coordinator_approved"]; ok {
		updates["coordinator_approved"] = engine.CoerceBool(raw)
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No approval flag provided"})
	}

	if err := middleware.DBConn.Model(&partnership).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update partnership", "error": err.Error()})
	}

	moaSent := engine.MOASent(partnership.MOAStatus, partnership.MOAURL)
	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Partnership updated.",
		Data: fiber.Map{
			"partnership": partnership,
			"status":      engine.ResolvePartnership(partnership.CompanyApproved, partnership.CoordinatorApproved, moaSent),
		},
	})
}

// SendMOA attaches the MOA document URL and marks it sent.
func SendMOA(c *fiber.Ctx) error {
	partnershipID := c.Params("id")

	type MOARequest struct {
		URL string `json:"url" validate:"required,url"`
	}

	var req MOARequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}
	if err := middleware.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "A valid MOA document URL is required"})
	}

	var partnership model.Partnership
	if err := middleware.DBConn.First(&partnership, "id = ?", partnershipID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Partnership not found"})
	}

	updates := map[string]interface{}{
		"moa_url":    req.URL,
		"moa_status": "sent",
	}
	if err := middleware.DBConn.Model(&partnership).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update MOA", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "MOA sent.",
		Data:    partnership,
	})
}

// RemovePartnership resets both approval flags and clears the MOA link. The
// coordinator row itself is untouched.
func RemovePartnership(c *fiber.Ctx) error {
	partnershipID := c.Params("id")

	var partnership model.Partnership
	err := middleware.DBConn.First(&partnership, "id = ?", partnershipID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Partnership not found"})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error", "error": err.Error()})
	}

	updates := map[string]interface{}{
		"company_approved":     false,
		"coordinator_approved": false,
		"moa_status":           "",
		"moa_url":              "",
	}
	if err := middleware.DBConn.Model(&partnership).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to remove partnership", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Partnership removed. Coordinator record kept.",
		Data: fiber.Map{
			"partnership": partnership,
			"status":      engine.ResolvePartnership(false, false, false),
		},
	})
}

package controller

import (
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
)

// GetCompanyProfile returns the company profile with its pictures and
// working hours.
func GetCompanyProfile(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var company model.Company
	err := middleware.DBConn.
		Preload("WorkingHours").
		Preload("LocationPictures").
		First(&company, "id = ?", companyID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Company not found"})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Company profile fetched.",
		Data:    company,
	})
}

// UpdateCompanyProfile edits the profile fields. Picture fields carry CDN
// URLs; the files themselves live in object storage.
func UpdateCompanyProfile(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var company model.Company
	if err := middleware.DBConn.First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Company not found"})
	}

	type ProfileRequest struct {
		Name              string `json:"name"`
		Industry          string `json:"industry"`
		Address           string `json:"address"`
		Description       string `json:"description"`
		Website           string `json:"website"`
		BackgroundPicture string `json:"background_picture"`
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Industry != "" {
		updates["industry"] = req.Industry
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Website != "" {
		updates["website"] = req.Website
	}
	if req.BackgroundPicture != "" {
		updates["background_picture"] = req.BackgroundPicture
	}

	if len(updates) > 0 {
		if err := middleware.DBConn.Model(&company).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update profile", "error": err.Error()})
		}
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Company profile updated.",
		Data:    company,
	})
}

// GetLocationPictures lists the company's gallery.
func GetLocationPictures(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var pictures []model.LocationPicture
	if err := middleware.DBConn.Where("company_id = ?", companyID).Find(&pictures).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch pictures", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Location pictures fetched.",
		Data:    pictures,
	})
}

// AddLocationPicture attaches a picture URL to the company gallery.
func AddLocationPicture(c *fiber.Ctx) error {
	companyID := c.Params("company_id")

	var company model.Company
	if err := middleware.DBConn.First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Company not found"})
	}

	type PictureRequest struct {
		URL     string `json:"url" validate:"required,url"`
		Caption string `json:"caption"`
	}

	var req PictureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON format", "error": err.Error()})
	}
	if err := middleware.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "A valid picture URL is required"})
	}

	picture := model.LocationPicture{
		CompanyID: company.ID,
		URL:       req.URL,
		Caption:   req.Caption,
	}
	if err := middleware.DBConn.Create(&picture).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add picture", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Location picture added.",
		Data:    picture,
	})
}

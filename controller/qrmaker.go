package controller

import (
	"encoding/base64"
	"fmt"

	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// Convert QR code to base64 directly
func generateQRCodeBase64(data string) (string, error) {
	qrCode, err := qrcode.Encode(data, qrcode.Medium, 512)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(qrCode), nil
}

// GenerateAssignmentQRCode creates a scannable check-in code for one
// assignment. The payload is an opaque token looked up on scan, so the code
// itself carries no student data.
func GenerateAssignmentQRCode(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	var assignment model.InternshipAssignment
	err := middleware.DBConn.Preload("Student").Preload("Student.User").First(&assignment, "id = ?", assignmentID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Assignment not found", "error": err.Error()})
	}
	if assignment.FinishedAt != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Internship is already finished"})
	}

	payload := uuid.NewString()

	qrImage, err := generateQRCodeBase64(payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate QR code", "error": err.Error()})
	}

	record := model.QRCode{
		AssignmentID: assignment.ID,
		Payload:      payload,
	}
	if err := middleware.DBConn.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to store QR code", "error": err.Error()})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "QR code successfully generated.",
		Data: fiber.Map{
			"assignment_id": assignment.ID,
			"student": fiber.Map{
				"first_name": assignment.Student.User.FirstName,
				"last_name":  assignment.Student.User.LastName,
			},
			"payload":  payload,
			"qr_image": qrImage,
		},
	})
}

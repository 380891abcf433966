package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/bjorndimsey/internshipgo-server/config"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"

	"firebase.google.com/go/messaging"
	"github.com/gofiber/fiber/v2"
)

// SendPushNotification sends a notification to a specific student's device
func SendPushNotification(token string, title string, body string) error {
	// Get Firebase Messaging client
	client, err := config.FirebaseApp.Messaging(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Messaging client: %w", err)
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Token: token, // The student's FCM token
	}

	response, err := client.Send(context.Background(), message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	log.Printf("Successfully sent notification: %s\n", response)
	return nil
}

// SaveFCMToken stores the device token a student registers for push delivery.
func SaveFCMToken(c *fiber.Ctx) error {
	var req model.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request"})
	}
	if req.StudentID == "" || req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Student ID and token are required"})
	}

	result := middleware.DBConn.Model(&model.Student{}).
		Where("id = ?", req.StudentID).
		Update("fcm_token", req.Token)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save token", "error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
	}

	return c.JSON(fiber.Map{"message": "Token saved successfully"})
}

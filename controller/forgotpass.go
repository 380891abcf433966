package controller

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bjorndimsey/internshipgo-server/config"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/model"
	"github.com/bjorndimsey/internshipgo-server/model/response"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GenerateRandomCode creates a random 6-digit verification code
func GenerateRandomCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

const verifiedCode = "VERIFIED"

// ForgotPassword handles forgot password request and sends a code
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotPasswordRequest struct {
		Email string `json:"email"`
	}

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	var user model.User
	result := middleware.DBConn.Table("users").Where("email = ?", req.Email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(response.ResponseModel{
			RetCode: "404",
			Message: "Email not found",
		})
	} else if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.ResponseModel{
			RetCode: "500",
			Message: "Database error",
		})
	}

	code := GenerateRandomCode()

	body := fmt.Sprintf(`Your password reset verification code is: %s

This code will expire in 5 minutes.

If you did not request a password reset, please ignore this email.`, code)

	if err := config.SendMail(req.Email, "Password Reset Verification Code", body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.ResponseModel{
			RetCode: "500",
			Message: "Error sending email",
		})
	}

	// One live code per email; a new request supersedes the old one.
	middleware.DBConn.Where("email = ?", req.Email).Delete(&model.PasswordReset{})
	reset := model.PasswordReset{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	if err := middleware.DBConn.Create(&reset).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.ResponseModel{
			RetCode: "500",
			Message: "Failed to store reset code",
		})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Verification code sent to your email",
	})
}

// VerifyResetCode handles code verification from user
func VerifyResetCode(c *fiber.Ctx) error {
	type VerifyRequest struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request"})
	}

	var reset model.PasswordReset
	err := middleware.DBConn.Where("email = ?", req.Email).First(&reset).Error
	if err != nil || time.Now().After(reset.ExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(response.ResponseModel{
			RetCode: "401",
			Message: "Code expired or not found",
		})
	}

	if reset.Code != req.Code {
		return c.Status(fiber.StatusUnauthorized).JSON(response.ResponseModel{
			RetCode: "401",
			Message: "Incorrect code",
		})
	}

	// Mark verified; the reset itself stays valid for another 15 minutes.
	reset.Code = verifiedCode
	reset.ExpiresAt = time.Now().Add(15 * time.Minute)
	if err := middleware.DBConn.Save(&reset).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.ResponseModel{
			RetCode: "500",
			Message: "Failed to update reset code",
		})
	}

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Code verified. You may now reset your password.",
	})
}

// ResetPassword handles final password update after verification
func ResetPassword(c *fiber.Ctx) error {
	type ResetRequest struct {
		Email           string `json:"email"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	var req ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if req.NewPassword != req.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(response.ResponseModel{
			RetCode: "400",
			Message: "Passwords do not match",
		})
	}

	var reset model.PasswordReset
	err := middleware.DBConn.Where("email = ?", req.Email).First(&reset).Error
	if err != nil || reset.Code != verifiedCode || time.Now().After(reset.ExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(response.ResponseModel{
			RetCode: "401",
			Message: "Unauthorized or session expired",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.ResponseModel{
			RetCode: "500",
			Message: "Password encryption failed",
		})
	}

	result := middleware.DBConn.Model(&model.User{}).Where("email = ?", req.Email).Update("password", string(hashedPassword))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response.ResponseModel{
			RetCode: "500",
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(response.ResponseModel{
			RetCode: "404",
			Message: "User not found",
		})
	}

	middleware.DBConn.Where("email = ?", req.Email).Delete(&model.PasswordReset{})

	return c.JSON(response.ResponseModel{
		RetCode: "200",
		Message: "Password successfully reset",
	})
}

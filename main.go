package main

import (
	"log"
	"time"

	"github.com/bjorndimsey/internshipgo-server/config"
	"github.com/bjorndimsey/internshipgo-server/middleware"
	"github.com/bjorndimsey/internshipgo-server/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Manila location, falling back to UTC+8: %v", err)
		time.Local = time.FixedZone("PHT", 8*60*60)
	} else {
		time.Local = loc
	}

	if middleware.ConnectDB() {
		log.Fatal("Database connection failed")
	}

	config.InitializeFirebase()

	app := fiber.New(fiber.Config{
		AppName:      middleware.GetEnvDefault("PROJ_NAME", "InternshipGo API"),
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	routes.AppRoutes(app)

	port := middleware.GetEnvDefault("PROJ_PORT", "5566")
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}

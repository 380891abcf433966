package routes

import (
	"github.com/bjorndimsey/internshipgo-server/controller"
	"github.com/bjorndimsey/internshipgo-server/middleware"

	"github.com/gofiber/fiber/v2"
)

func AppRoutes(app *fiber.App) {
	// HEALTH CHECK
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("InternshipGo API")
	})

	//Grouped routes, token required
	portal := app.Group("/api", middleware.JWTMiddleware())

	app.Post("/role/insert", controller.CreateRole)

	//AUTH
	app.Post("/register-company", controller.RegisterCompany)
	app.Post("/login", controller.Login)
	portal.Post("/logout", controller.Logout)
	portal.Put("/change-password/:id", controller.ChangePassword)

	// FORGOT PASSWORD
	app.Post("/forgot-password", controller.ForgotPassword)
	app.Post("/verify-code", controller.VerifyResetCode)
	app.Post("/reset-password", controller.ResetPassword)

	//COMPANY PROFILE
	portal.Get("/company/:company_id/profile", controller.GetCompanyProfile)
	portal.Put("/company/:company_id/profile", controller.UpdateCompanyProfile)
	portal.Get("/company/:company_id/location-pictures", controller.GetLocationPictures)
	portal.Post("/company/:company_id/location-pictures", controller.AddLocationPicture)

	//WORKING HOURS
	portal.Post("/company/:company_id/working-hours", controller.SetWorkingHours)
	portal.Get("/company/:company_id/working-hours", controller.GetWorkingHours)

	//APPLICATIONS
	portal.Get("/company/:company_id/applications", controller.GetCompanyApplications)
	portal.Put("/applications/status/:id", controller.UpdateApplicationStatus)

	//ASSIGNMENTS
	portal.Get("/company/:company_id/assignments", controller.GetCompanyAssignments)
	portal.Put("/assignments/finish/:ids", controller.FinishAssignments)

	//ATTENDANCE
	portal.Post("/attendance/submit", controller.SubmitAttendance)
	portal.Post("/attendance/clock-in/:id", controller.ClockIn)
	portal.Post("/attendance/clock-out/:id", controller.ClockOut)
	portal.Get("/attendance/entry-status/:id", controller.EntryStatus)
	portal.Put("/attendance/verify/:id", controller.VerifyAttendance)
	portal.Get("/company/:company_id/attendance", controller.GetCompanyAttendance)
	portal.Get("/attendance/intern/:id", controller.GetInternAttendance)
	portal.Get("/attendance/progress/:id", controller.InternProgress)
	portal.Get("/getallattendance/:company_id/:date", controller.GetAttendanceSummary)

	//QR CODE
	portal.Post("/generate-qr/:id", controller.GenerateAssignmentQRCode)
	portal.Post("/scan-qrcode", controller.ScanQRCode)

	//EXPORT
	portal.Get("/printdtr/:id", controller.ExportAttendanceSheetToPDF)

	//PARTNERSHIPS
	portal.Get("/company/:company_id/coordinators", controller.GetCompanyCoordinators)
	portal.Post("/partnerships/link", controller.LinkCoordinator)
	portal.Put("/partnerships/approval/:id", controller.UpdatePartnershipApproval)
	portal.Put("/partnerships/send-moa/:id", controller.SendMOA)
	portal.Delete("/partnerships/:id", controller.RemovePartnership)

	//NOTIFICATIONS
	portal.Post("/fcm-token", controller.SaveFCMToken)
}

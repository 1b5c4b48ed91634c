// file: internals/features/academics/marks/route/mark_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	controller "campustrack_backend/internals/features/academics/marks/controller"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

// MarkRoutes memasang route nilai + analytics
func MarkRoutes(app *fiber.App, db *gorm.DB) {
	markController := controller.NewMarkController(db)
	bulkController := controller.NewBulkMarkController(db)
	analyticsController := controller.NewAnalyticsController(db)

	// ==========================
	// USER (semua role login)
	// ==========================
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	user.Get("/marks/me", markController.ListMyMarks)
	user.Get("/analytics/dashboard", analyticsController.StudentDashboard)
	user.Get("/analytics/leaderboard", analyticsController.Leaderboard)
	user.Get("/analytics/profile/:id", analyticsController.ProfileAnalytics)

	// ==========================
	// TEACHER (wajib approved)
	// ==========================
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyApprovedTeacher("mengelola nilai"),
	)

	teacher.Post("/marks", markController.CreateMark)
	teacher.Get("/marks", markController.ListMarksByStudent)
	teacher.Put("/marks/:id", markController.UpdateMark)
	teacher.Delete("/marks/:id", markController.DeleteMark)

	teacher.Get("/marks/bulk/template", bulkController.DownloadTemplate)
	teacher.Post("/marks/bulk", bulkController.ImportMarks)
	teacher.Post("/marks/bulk/availability", bulkController.CheckStudentAvailability)

	teacher.Get("/analytics/students", analyticsController.StudentInsights)
	teacher.Get("/analytics/students/:id", analyticsController.StudentInsightDetail)

	// ==========================
	// ADMIN — akses penuh nilai
	// ==========================
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola nilai"), constants.RoleAdmin),
	)

	admin.Post("/marks", markController.CreateMark)
	admin.Get("/marks", markController.ListMarksByStudent)
	admin.Put("/marks/:id", markController.UpdateMark)
	admin.Delete("/marks/:id", markController.DeleteMark)
	admin.Post("/marks/bulk", bulkController.ImportMarks)
}

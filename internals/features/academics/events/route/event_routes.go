// file: internals/features/academics/events/route/event_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campustrack_backend/internals/features/academics/events/controller"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

// EventRoutes memasang route pengumuman event
func EventRoutes(app *fiber.App, db *gorm.DB) {
	eventController := controller.NewEventController(db)

	// ==========================
	// USER (wajib login)
	// ==========================
	user := app.Group("/api/u/events", authMiddleware.AuthMiddleware(db))

	user.Get("/", eventController.ListEvents)
	user.Get("/:id", eventController.GetEvent)
	user.Get("/:id/register", eventController.RegisterRedirect)

	// ==========================
	// TEACHER (wajib approved)
	// ==========================
	teacher := app.Group("/api/t/events",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyApprovedTeacher("mengelola event"),
	)

	teacher.Post("/", eventController.CreateEvent)
	teacher.Put("/:id", eventController.UpdateEvent)
	teacher.Delete("/:id", eventController.DeleteEvent)
}

// file: internals/features/home/notifications/route/notification_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campustrack_backend/internals/features/home/notifications/controller"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

// NotificationRoutes memasang route notifikasi in-app
func NotificationRoutes(app *fiber.App, db *gorm.DB) {
	notificationController := controller.NewNotificationController(db)

	notifications := app.Group("/api/u/notifications", authMiddleware.AuthMiddleware(db))

	notifications.Get("/", notificationController.ListNotifications)
	notifications.Get("/poll", notificationController.PollUnread)
	notifications.Patch("/read-all", notificationController.MarkAllRead)
	notifications.Patch("/:id/read", notificationController.MarkRead)
	notifications.Delete("/read", notificationController.ClearRead)
}

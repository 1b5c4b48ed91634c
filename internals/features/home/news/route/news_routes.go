// file: internals/features/home/news/route/news_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campustrack_backend/internals/features/home/news/controller"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

// NewsRoutes memasang route berita kampus
func NewsRoutes(app *fiber.App, db *gorm.DB) {
	newsController := controller.NewNewsController(db)

	// ==========================
	// PUBLIC — tanpa login
	// ==========================
	public := app.Group("/api/public/news")

	public.Get("/", newsController.ListNews)
	public.Get("/:id", newsController.GetNews)

	// ==========================
	// USER (semua role login) — edit/delete dibatasi author-atau-admin di controller
	// ==========================
	user := app.Group("/api/u/news", authMiddleware.AuthMiddleware(db))

	user.Post("/", newsController.CreateNews)
	user.Put("/:id", newsController.UpdateNews)
	user.Delete("/:id", newsController.DeleteNews)
}

// file: internals/features/feed/posts/route/post_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campustrack_backend/internals/features/feed/posts/controller"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

// PostRoutes memasang route feed sosial (post, like, komentar).
// Semua endpoint wajib login; moderasi author/admin dicek di controller.
func PostRoutes(app *fiber.App, db *gorm.DB) {
	postController := controller.NewPostController(db)
	commentController := controller.NewCommentController(db)

	posts := app.Group("/api/u/posts", authMiddleware.AuthMiddleware(db))

	posts.Get("/", postController.ListPosts)
	posts.Post("/", postController.CreatePost)
	posts.Get("/:id", postController.GetPost)
	posts.Put("/:id", postController.UpdatePost)
	posts.Delete("/:id", postController.DeletePost)

	posts.Post("/:id/like", postController.ToggleLike)

	posts.Get("/:id/comments", commentController.ListComments)
	posts.Post("/:id/comments", commentController.CreateComment)
	posts.Put("/:id/comments/:comment_id", commentController.UpdateComment)
	posts.Delete("/:id/comments/:comment_id", commentController.DeleteComment)
}

// file: internals/features/users/user/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	controller "campustrack_backend/internals/features/users/user/controller"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

// UserRoutes memasang route profil, manajemen student, dan approval teacher
func UserRoutes(app *fiber.App, db *gorm.DB) {
	profileController := controller.NewProfileController(db)
	adminController := controller.NewAdminUserController(db)
	approvalController := controller.NewApprovalController(db)

	// ==========================
	// USER (wajib login)
	// Base: /api/u/users
	// ==========================
	user := app.Group("/api/u/users", authMiddleware.AuthMiddleware(db))

	user.Get("/me/profile", profileController.GetProfile)
	user.Put("/me/profile", profileController.UpdateProfile)
	user.Post("/me/avatar", profileController.UploadAvatar)
	user.Get("/:id/profile", profileController.GetProfile)
	user.Get("/departments", adminController.ListDepartments)

	// ==========================
	// TEACHER (wajib approved) — roster student + soft deactivate
	// Base: /api/t/users
	// ==========================
	teacher := app.Group("/api/t/users",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyApprovedTeacher("mengelola student"),
	)

	teacher.Get("/students", adminController.ListStudents)
	teacher.Patch("/students/:id/toggle-active", adminController.ToggleStudentActive)

	// ==========================
	// ADMIN
	// Base: /api/a/users
	// ==========================
	admin := app.Group("/api/a/users",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola user"), constants.RoleAdmin),
	)

	admin.Get("/students", adminController.ListStudents)
	admin.Patch("/students/:id/toggle-active", adminController.ToggleStudentActive)
	admin.Post("/departments", adminController.CreateDepartment)

	admin.Get("/teachers/pending", approvalController.ListPendingTeachers)
	admin.Patch("/teachers/:id/approve", approvalController.ApproveTeacher)
	admin.Patch("/teachers/:id/reject", approvalController.RejectTeacher)
}

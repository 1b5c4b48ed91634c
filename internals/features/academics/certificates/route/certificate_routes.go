// file: internals/features/academics/certificates/route/certificate_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campustrack_backend/internals/features/academics/certificates/controller"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

// CertificateRoutes memasang route upload & verifikasi sertifikat
func CertificateRoutes(app *fiber.App, db *gorm.DB) {
	certController := controller.NewCertificateController(db)

	// ==========================
	// USER (wajib login)
	// ==========================
	user := app.Group("/api/u/certificates", authMiddleware.AuthMiddleware(db))

	user.Post("/", certController.UploadCertificate)
	user.Get("/me", certController.ListMyCertificates)
	user.Get("/student/:id", certController.ListStudentCertificates)
	user.Delete("/:id", certController.DeleteCertificate)

	// ==========================
	// TEACHER (wajib approved)
	// ==========================
	teacher := app.Group("/api/t/certificates",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyApprovedTeacher("verifikasi sertifikat"),
	)

	teacher.Get("/pending", certController.ListPendingCertificates)
	teacher.Patch("/:id/verify", certController.VerifyCertificate)
}

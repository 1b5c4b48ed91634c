// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campustrack_backend/internals/features/users/auth/controller"
	rateLimiter "campustrack_backend/internals/middlewares"
	authMiddleware "campustrack_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// Cek ketersediaan dari form register
	baseAuth.Get("/check-username", authController.CheckUsername)
	baseAuth.Get("/check-email", authController.CheckEmail)

	// Lupa password via security question
	baseAuth.Get("/forgot-password/question", rateLimiter.ForgotPasswordRateLimiter(), authController.GetSecurityQuestion)
	baseAuth.Post("/forgot-password/reset", rateLimiter.ForgotPasswordRateLimiter(), authController.ResetPassword)

	// ==========================
	// PROTECTED
	// Base: /api/auth (wajib token)
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))

	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Post("/change-password", authController.ChangePassword)
	protectedAuth.Get("/me", authController.Me)
}

// internals/features/users/auth/service/password_service.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "campustrack_backend/internals/features/users/auth/helper"
	authRepo "campustrack_backend/internals/features/users/auth/repository"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/mailer"
)

// ========================== SECURITY QUESTION ==========================
// GET /api/auth/security-question?email=...
func GetSecurityQuestion(db *gorm.DB, c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email wajib diisi")
	}

	user, err := authRepo.FindUserByEmail(db, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"security_question": user.SecurityQuestion,
	})
}

// ========================== RESET PASSWORD ==========================
// Reset lewat security answer, tanpa login
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email          string `json:"email"`
		SecurityAnswer string `json:"security_answer"`
		NewPassword    string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	// 🔹 Validasi format email dan password
	if err := authHelper.ValidateResetPassword(input.Email, input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error()) // 422 untuk validasi
	}

	// 🔹 Cari user
	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	// 🔹 Cocokkan security answer (disimpan sebagai hash, dibandingkan lowercase)
	answer := strings.ToLower(strings.TrimSpace(input.SecurityAnswer))
	if err := authHelper.CheckPasswordHash(user.SecurityAnswer, answer); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Security answer salah")
	}

	// 🔹 Hash password baru
	hashedPassword, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	// 🔹 Update password + putus semua sesi refresh lama
	if err := authRepo.UpdateUserPassword(db, user.ID, hashedPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	_ = authRepo.RevokeAllRefreshTokens(db, user.ID)

	mailer.SendBestEffort(user.Email, "Password diubah",
		"Password akun Anda baru saja direset. Kalau ini bukan Anda, segera hubungi admin.")

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	// Ambil user_id dari Locals dengan aman
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// Cek password lama
	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	if err := authHelper.ValidateResetPassword(user.Email, input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/configs"
	"campustrack_backend/internals/constants"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	authHelper "campustrack_backend/internals/features/users/auth/helper"
	authRepo "campustrack_backend/internals/features/users/auth/repository"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/mailer"
)

/* ==========================
   REGISTER
========================== */

type registerInput struct {
	UserName         string  `json:"user_name"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	Role             string  `json:"role"`
	Department       *string `json:"department"`
	Year             *int    `json:"year"`
	SecurityQuestion string  `json:"security_question"`
	SecurityAnswer   string  `json:"security_answer"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password, input.SecurityAnswer); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = constants.RoleStudent
	}
	// Register publik hanya untuk student dan teacher. Admin dibuat lewat seeding.
	if role != constants.RoleStudent && role != constants.RoleTeacher {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role harus student atau teacher")
	}
	if role == constants.RoleStudent {
		if input.Department == nil || strings.TrimSpace(*input.Department) == "" || input.Year == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student wajib mengisi department dan year")
		}
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	answerHash, err := authHelper.HashPassword(strings.ToLower(strings.TrimSpace(input.SecurityAnswer)))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Security answer hashing failed")
	}

	user := userModel.UserModel{
		UserName:         strings.TrimSpace(input.UserName),
		FullName:         strings.TrimSpace(input.FullName),
		Email:            strings.ToLower(strings.TrimSpace(input.Email)),
		Password:         passwordHash,
		Role:             role,
		SecurityQuestion: strings.TrimSpace(input.SecurityQuestion),
		SecurityAnswer:   answerHash,
	}
	if role == constants.RoleStudent {
		dep := strings.TrimSpace(*input.Department)
		user.Department = &dep
		user.Year = input.Year
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Create user + entitas turunan dalam satu transaksi
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}

		switch role {
		case constants.RoleStudent:
			// Student ID berurutan per tahun pendaftaran, di-assign di dalam transaksi
			sid, err := helper.GenerateStudentID(tx)
			if err != nil {
				return err
			}
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", user.ID).
				Update("user_student_id", sid).Error; err != nil {
				return err
			}
			user.UserStudentID = &sid
			return tx.Create(&userModel.StudentProfileModel{UserID: user.ID}).Error

		case constants.RoleTeacher:
			return tx.Create(&userModel.TeacherProfileModel{UserID: user.ID}).Error
		}
		return nil
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
		}
		log.Printf("[ERROR] Register gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	// Best-effort: kabari admin ada teacher baru menunggu approval
	if role == constants.RoleTeacher {
		notifyAdminsPendingTeacher(db, &user)
		mailer.SendBestEffort(user.Email, "Registrasi diterima",
			fmt.Sprintf("Halo %s, registrasi akun teacher Anda sudah kami terima dan sedang menunggu persetujuan admin.", user.DisplayName()))
	}

	resp := fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	}
	if user.UserStudentID != nil {
		resp["user_student_id"] = *user.UserStudentID
	}
	return helper.JsonCreated(c, "Registration successful", resp)
}

func notifyAdminsPendingTeacher(db *gorm.DB, user *userModel.UserModel) {
	var adminIDs []uuid.UUID
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = TRUE", constants.RoleAdmin).
		Pluck("id", &adminIDs).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil daftar admin: %v", err)
		return
	}
	notifService.NotifyUsers(db, adminIDs,
		fmt.Sprintf("Teacher baru %q menunggu persetujuan.", user.DisplayName()),
		notifModel.NotificationTypeApproval, "teacher", "pending")
}

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, input.Identifier)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	return issueTokensResponse(c, db, user, "Login successful")
}

func issueTokensResponse(c *fiber.Ctx, db *gorm.DB, user *userModel.UserModel, msg string) error {
	accessToken, refreshToken, err := IssueTokenPair(db, c, user)
	if err != nil {
		log.Printf("[ERROR] Gagal issue token untuk user %s: %v", user.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, msg, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":               user.ID,
			"user_name":        user.UserName,
			"full_name":        user.FullName,
			"email":            user.Email,
			"role":             user.Role,
			"teacher_approved": user.UserTeacherApproved,
			"department":       user.Department,
			"year":             user.Year,
			"user_student_id":  user.UserStudentID,
		},
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login tidak dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token invalid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token invalid")
	}

	// Cari by google_id dulu, lalu by email (link akun lama)
	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = authRepo.FindUserByEmail(db, claimSet.Email)
		if err == nil && user.GoogleID == nil {
			sub := claimSet.Sub
			_ = db.Model(user).Update("google_id", sub).Error
			user.GoogleID = &sub
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound,
			"Akun belum terdaftar. Silakan register terlebih dahulu.")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokensResponse(c, db, user, "Login successful")
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Blacklist access token yang sedang dipakai (sisanya TTL dari claim exp)
	if raw := extractAccessToken(c); raw != "" {
		ttl := blacklistTTLFor(raw)
		if err := authRepo.BlacklistToken(db, raw, ttl); err != nil {
			log.Printf("[ERROR] Gagal blacklist token: %v", err)
		}
	}

	// Revoke refresh token dari cookie kalau ada
	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if err := authRepo.RevokeRefreshToken(db, rt); err != nil {
			log.Printf("[ERROR] Gagal revoke refresh token: %v", err)
		}
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout successful", nil)
}

func extractAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// blacklistTTLFor: sisa umur token, minimal 1 menit sebagai jaga-jaga
func blacklistTTLFor(raw string) time.Duration {
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err == nil {
		if expF, ok := claims["exp"].(float64); ok {
			if remain := time.Until(time.Unix(int64(expF), 0)); remain > time.Minute {
				return remain
			}
		}
	}
	return time.Minute
}

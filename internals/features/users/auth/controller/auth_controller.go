package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "campustrack_backend/internals/features/users/auth/repository"
	"campustrack_backend/internals/features/users/auth/service"
	models "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userUUID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var user models.UserModel
	if err := ac.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
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
			"is_active":        user.IsActive,
			"created_at":       user.CreatedAt,
		},
	})
}

// CheckUsername — dipakai form register untuk cek ketersediaan secara live
func (ac *AuthController) CheckUsername(c *fiber.Ctx) error {
	username := c.Query("username")
	taken, err := authRepo.IsUsernameTaken(ac.DB, username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "OK", fiber.Map{"available": !taken})
}

// CheckEmail — sama dengan CheckUsername, untuk field email
func (ac *AuthController) CheckEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	taken, err := authRepo.IsEmailTaken(ac.DB, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "OK", fiber.Map{"available": !taken})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, c)
}

func (ac *AuthController) GetSecurityQuestion(c *fiber.Ctx) error {
	return service.GetSecurityQuestion(ac.DB, c)
}

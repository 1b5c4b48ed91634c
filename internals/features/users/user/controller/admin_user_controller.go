package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/users/user/dto"
	"campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
)

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// ListStudents menampilkan daftar student dengan filter opsional.
// Default hanya yang aktif; pakai ?show_inactive=true untuk melihat semuanya.
func (ac *AdminUserController) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&model.UserModel{}).Where("role = ?", constants.RoleStudent)

	if c.Query("show_inactive") != "true" {
		q = q.Where("is_active = TRUE")
	}
	if dep := strings.TrimSpace(c.Query("department")); dep != "" {
		q = q.Where("department = ?", dep)
	}
	if year := c.QueryInt("year", 0); year > 0 {
		q = q.Where("year = ?", year)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(user_student_id) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}

	out := make([]dto.UserLite, 0, len(users))
	for i := range users {
		out = append(out, dto.ToUserLite(&users[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPagination(paging, total))
}

// ToggleStudentActive: soft enable/disable akun student (bukan hard delete)
func (ac *AdminUserController) ToggleStudentActive(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ac.DB.First(&user, "id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hanya akun student yang bisa diubah statusnya")
	}

	newState := !user.IsActive
	if err := ac.DB.Model(&user).Update("is_active", newState).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status")
	}

	log.Printf("[INFO] Status student %s diubah menjadi is_active=%v", user.ID, newState)
	return helper.JsonUpdated(c, "Status student berhasil diubah", fiber.Map{
		"id":        user.ID,
		"is_active": newState,
	})
}

// ListDepartments: daftar jurusan untuk dropdown form
func (ac *AdminUserController) ListDepartments(c *fiber.Ctx) error {
	var departments []model.DepartmentModel
	if err := ac.DB.Order("name ASC").Find(&departments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jurusan")
	}
	return helper.JsonOK(c, "OK", departments)
}

// CreateDepartment menambah jurusan baru (admin only)
func (ac *AdminUserController) CreateDepartment(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Name == "" || input.Code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name dan code wajib diisi")
	}

	department := model.DepartmentModel{Name: input.Name, Code: input.Code}
	if err := ac.DB.Create(&department).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jurusan sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jurusan")
	}
	return helper.JsonCreated(c, "Jurusan berhasil dibuat", department)
}

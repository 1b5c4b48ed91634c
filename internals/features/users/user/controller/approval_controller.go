package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/users/user/dto"
	"campustrack_backend/internals/features/users/user/model"
	"campustrack_backend/internals/features/users/user/service"
	helper "campustrack_backend/internals/helpers"
)

type ApprovalController struct {
	DB *gorm.DB
}

func NewApprovalController(db *gorm.DB) *ApprovalController {
	return &ApprovalController{DB: db}
}

// ListPendingTeachers: antrian approval, yang paling lama daftar tampil dulu
func (ac *ApprovalController) ListPendingTeachers(c *fiber.Ctx) error {
	var teachers []model.UserModel
	if err := ac.DB.
		Where("role = ? AND user_teacher_approved = FALSE AND is_active = TRUE", constants.RoleTeacher).
		Order("created_at ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar teacher")
	}

	out := make([]dto.PendingTeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, dto.ToPendingTeacherResponse(&teachers[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

func (ac *ApprovalController) ApproveTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	actorID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	teacher, err := service.ApproveTeacher(ac.DB, teacherID, actorID)
	if err != nil {
		return approvalError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher berhasil disetujui", dto.ToUserLite(teacher))
}

func (ac *ApprovalController) RejectTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	actorID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	teacher, err := service.RejectTeacher(ac.DB, teacherID, actorID)
	if err != nil {
		return approvalError(c, err)
	}
	return helper.JsonUpdated(c, "Pengajuan teacher ditolak", dto.ToUserLite(teacher))
}

func approvalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	case errors.Is(err, service.ErrNotTeacher):
		return helper.JsonError(c, fiber.StatusBadRequest, "User bukan teacher")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses approval")
	}
}

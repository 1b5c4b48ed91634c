package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/academics/marks/dto"
	"campustrack_backend/internals/features/academics/marks/model"
	"campustrack_backend/internals/features/academics/marks/service"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/mailer"
)

type MarkController struct {
	DB *gorm.DB
}

func NewMarkController(db *gorm.DB) *MarkController {
	return &MarkController{DB: db}
}

// loadStudent memastikan target memang student aktif, dan teacher dengan
// department hanya boleh mengisi nilai student di department yang sama.
// Admin bebas.
func (mc *MarkController) loadStudent(c *fiber.Ctx, studentID uuid.UUID) (*userModel.UserModel, error) {
	var student userModel.UserModel
	if err := mc.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
	}
	if student.Role != constants.RoleStudent || !student.IsActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Target bukan student aktif")
	}

	if helper.GetUserRole(c) == constants.RoleAdmin {
		return &student, nil
	}

	teacherID, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var teacher userModel.UserModel
	if err := mc.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if teacher.Department != nil && student.Department != nil && *teacher.Department != *student.Department {
		return nil, fiber.NewError(fiber.StatusForbidden, "Student berada di department lain")
	}
	return &student, nil
}

// ====================== CREATE ======================
// POST /api/t/marks
func (mc *MarkController) CreateMark(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Subject == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subject wajib diisi")
	}
	if req.Total <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Total harus lebih dari 0")
	}
	if req.Obtained < 0 || req.Obtained > req.Total {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nilai harus di antara 0 dan total")
	}

	student, err := mc.loadStudent(c, req.StudentID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa student")
	}

	mark := model.MarkModel{
		MarkStudentID: student.ID,
		MarkTeacherID: teacherID,
		MarkSubject:   req.Subject,
		MarkObtained:  req.Obtained,
		MarkTotal:     req.Total,
	}
	if err := mc.DB.Create(&mark).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}

	notifService.NotifyUser(mc.DB, student.ID,
		fmt.Sprintf("Nilai %s Anda sudah masuk: %.0f/%.0f", mark.MarkSubject, mark.MarkObtained, mark.MarkTotal),
		notifModel.NotificationTypeMark, "mark")
	mailer.SendBestEffort(student.Email, "Nilai baru",
		fmt.Sprintf("Halo %s, nilai %s Anda sudah dimasukkan: %.0f/%.0f (%.1f%%).",
			student.DisplayName(), mark.MarkSubject, mark.MarkObtained, mark.MarkTotal,
			service.Percentage(mark.MarkObtained, mark.MarkTotal)))

	return helper.JsonCreated(c, "Nilai berhasil disimpan", dto.ToMarkResponse(&mark))
}

// ====================== LIST ======================
// GET /api/t/marks?student_id=... (teacher) — nilai satu student
func (mc *MarkController) ListMarksByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib diisi")
	}
	if _, err := mc.loadStudent(c, studentID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa student")
	}
	return mc.listMarksOf(c, studentID)
}

// GET /api/u/marks/me (student) — nilai sendiri
func (mc *MarkController) ListMyMarks(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return mc.listMarksOf(c, userID)
}

func (mc *MarkController) listMarksOf(c *fiber.Ctx, studentID uuid.UUID) error {
	var marks []model.MarkModel
	if err := mc.DB.Preload("Teacher").
		Where("mark_student_id = ?", studentID).
		Order("mark_created_at DESC").
		Find(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	out := make([]dto.MarkResponse, 0, len(marks))
	for i := range marks {
		out = append(out, dto.ToMarkResponse(&marks[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"marks":   out,
		"average": service.AverageOfPercentages(marks),
	})
}

// ====================== UPDATE ======================
// Hanya teacher yang mengisi atau admin
func (mc *MarkController) UpdateMark(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	markID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mark model.MarkModel
	if err := mc.DB.First(&mark, "mark_id = ?", markID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	if mark.MarkTeacherID != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pengisi nilai yang boleh mengubah")
	}

	var req dto.UpdateMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	if req.Subject != nil && strings.TrimSpace(*req.Subject) != "" {
		updates["mark_subject"] = strings.TrimSpace(*req.Subject)
	}
	if req.Obtained != nil {
		updates["mark_obtained"] = *req.Obtained
	}
	if req.Total != nil {
		if *req.Total <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Total harus lebih dari 0")
		}
		updates["mark_total"] = *req.Total
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	if err := mc.DB.Model(&mark).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update nilai")
	}
	if err := mc.DB.First(&mark, "mark_id = ?", markID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca ulang nilai")
	}

	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", dto.ToMarkResponse(&mark))
}

// ====================== DELETE ======================
func (mc *MarkController) DeleteMark(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	markID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var mark model.MarkModel
	if err := mc.DB.First(&mark, "mark_id = ?", markID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	if mark.MarkTeacherID != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pengisi nilai yang boleh menghapus")
	}

	if err := mc.DB.Delete(&mark).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", nil)
}

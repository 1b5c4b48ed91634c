package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/users/user/dto"
	"campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GetProfile menampilkan profil user (diri sendiri via /me, orang lain via :id)
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	var targetID uuid.UUID
	if idParam := c.Params("id"); idParam != "" {
		parsed, err := uuid.Parse(idParam)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
		}
		targetID = parsed
	} else {
		own, err := helper.GetUserUUID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		targetID = own
	}

	var user model.UserModel
	if err := pc.DB.First(&user, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	switch user.Role {
	case constants.RoleTeacher, constants.RoleAdmin:
		var profile model.TeacherProfileModel
		err := pc.DB.Where("user_id = ?", user.ID).First(&profile).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
		}
		return helper.JsonOK(c, "OK", dto.ToTeacherProfileResponse(&user, &profile))
	default:
		var profile model.StudentProfileModel
		err := pc.DB.Where("user_id = ?", user.ID).First(&profile).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
		}
		return helper.JsonOK(c, "OK", dto.ToStudentProfileResponse(&user, &profile))
	}
}

// UpdateProfile mengubah bio/skill/link milik sendiri
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user model.UserModel
	if err := pc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if req.FullName != nil {
		if err := pc.DB.Model(&user).Update("full_name", *req.FullName).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update nama")
		}
	}

	if user.Role == constants.RoleTeacher || user.Role == constants.RoleAdmin {
		updates := map[string]any{}
		if req.Bio != nil {
			updates["bio"] = *req.Bio
		}
		if req.Designation != nil {
			updates["designation"] = *req.Designation
		}
		if req.Qualification != nil {
			updates["qualification"] = *req.Qualification
		}
		if req.ExperienceYrs != nil {
			updates["experience_yrs"] = *req.ExperienceYrs
		}
		if req.Specialization != nil {
			updates["specialization"] = *req.Specialization
		}
		if len(updates) > 0 {
			if err := upsertTeacherProfile(pc.DB, userID, updates); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
			}
		}
	} else {
		updates := map[string]any{}
		if req.Bio != nil {
			updates["bio"] = *req.Bio
		}
		if req.LinkedIn != nil {
			updates["linkedin"] = *req.LinkedIn
		}
		if req.GitHub != nil {
			updates["github"] = *req.GitHub
		}
		if req.Skills != nil {
			raw, err := json.Marshal(*req.Skills)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Format skills tidak valid")
			}
			updates["skills"] = datatypes.JSON(raw)
		}
		if len(updates) > 0 {
			if err := upsertStudentProfile(pc.DB, userID, updates); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
			}
		}
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", nil)
}

// UploadAvatar menerima multipart file, konversi ke WebP, simpan URL-nya
func (pc *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File avatar wajib diunggah")
	}

	url, err := helper.UploadImageToSupabase("avatars", fileHeader)
	if err != nil {
		log.Printf("[ERROR] Upload avatar gagal untuk user %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role := helper.GetUserRole(c)
	updates := map[string]any{"avatar_url": url}
	if role == constants.RoleTeacher || role == constants.RoleAdmin {
		err = upsertTeacherProfile(pc.DB, userID, updates)
	} else {
		err = upsertStudentProfile(pc.DB, userID, updates)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan avatar")
	}

	return helper.JsonUpdated(c, "Avatar berhasil diperbarui", fiber.Map{"avatar_url": url})
}

func upsertStudentProfile(db *gorm.DB, userID uuid.UUID, updates map[string]any) error {
	res := db.Model(&model.StudentProfileModel{}).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		profile := model.StudentProfileModel{UserID: userID}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}
		return db.Model(&profile).Updates(updates).Error
	}
	return nil
}

func upsertTeacherProfile(db *gorm.DB, userID uuid.UUID, updates map[string]any) error {
	res := db.Model(&model.TeacherProfileModel{}).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		profile := model.TeacherProfileModel{UserID: userID}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}
		return db.Model(&profile).Updates(updates).Error
	}
	return nil
}

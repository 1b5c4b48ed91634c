// internals/features/users/user/service/approval_service.go
package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	userModel "campustrack_backend/internals/features/users/user/model"
	"campustrack_backend/internals/mailer"
)

var (
	ErrNotTeacher = fmt.Errorf("user bukan teacher")
)

// ApproveTeacher mengaktifkan kapabilitas teacher.
// Transisi state idempoten, tetapi notifikasi SELALU dibuat setiap pemanggilan
// supaya teacher tetap dapat kabar walau admin mengklik dua kali.
func ApproveTeacher(db *gorm.DB, teacherID, actorID uuid.UUID) (*userModel.UserModel, error) {
	var teacher userModel.UserModel
	if err := db.First(&teacher, "id = ?", teacherID).Error; err != nil {
		return nil, err
	}
	if teacher.Role != constants.RoleTeacher {
		return nil, ErrNotTeacher
	}

	if !teacher.UserTeacherApproved {
		if err := db.Model(&teacher).Update("user_teacher_approved", true).Error; err != nil {
			return nil, err
		}
		teacher.UserTeacherApproved = true
	}

	notifService.NotifyUser(db, teacher.ID,
		"Akun teacher Anda telah disetujui. Selamat mengajar!",
		notifModel.NotificationTypeApproval, "teacher", "approved")

	mailer.SendBestEffort(teacher.Email, "Akun teacher disetujui",
		fmt.Sprintf("Halo %s, akun teacher Anda telah disetujui oleh admin.", teacher.DisplayName()))

	log.Printf("[INFO] Teacher %s disetujui oleh admin %s", teacher.ID, actorID)
	return &teacher, nil
}

// RejectTeacher menolak pengajuan teacher dan menurunkan role ke student.
// Sama seperti approve: notifikasi selalu dibuat per pemanggilan.
func RejectTeacher(db *gorm.DB, teacherID, actorID uuid.UUID) (*userModel.UserModel, error) {
	var teacher userModel.UserModel
	if err := db.First(&teacher, "id = ?", teacherID).Error; err != nil {
		return nil, err
	}
	if teacher.Role != constants.RoleTeacher {
		return nil, ErrNotTeacher
	}

	if err := db.Model(&teacher).Updates(map[string]any{
		"user_teacher_approved": false,
		"role":                  constants.RoleStudent,
	}).Error; err != nil {
		return nil, err
	}
	teacher.UserTeacherApproved = false
	teacher.Role = constants.RoleStudent

	notifService.NotifyUser(db, teacher.ID,
		"Pengajuan akun teacher Anda ditolak. Akun Anda sekarang berstatus student.",
		notifModel.NotificationTypeApproval, "teacher", "rejected")

	mailer.SendBestEffort(teacher.Email, "Pengajuan teacher ditolak",
		fmt.Sprintf("Halo %s, pengajuan akun teacher Anda ditolak oleh admin.", teacher.DisplayName()))

	log.Printf("[INFO] Teacher %s ditolak oleh admin %s", teacher.ID, actorID)
	return &teacher, nil
}

package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/academics/certificates/dto"
	"campustrack_backend/internals/features/academics/certificates/model"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/mailer"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// ====================== UPLOAD (STUDENT) ======================
// POST /api/u/certificates — multipart: file + title + issuer + issued_at
func (cc *CertificateController) UploadCertificate(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if helper.GetUserRole(c) != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya student yang bisa mengunggah sertifikat")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title wajib diisi")
	}
	issuer := strings.TrimSpace(c.FormValue("issuer"))

	issuedAt := time.Now()
	if raw := strings.TrimSpace(c.FormValue("issued_at")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "issued_at harus format YYYY-MM-DD")
		}
		issuedAt = parsed
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File sertifikat wajib diunggah")
	}
	if !constants.IsCertificateFile(fileHeader.Filename) {
		return helper.JsonError(c, fiber.StatusBadRequest, "File sertifikat harus PDF atau gambar")
	}
	fileURL, err := helper.UploadDocumentToSupabase("certificates", fileHeader)
	if err != nil {
		log.Printf("[ERROR] Upload sertifikat gagal untuk user %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cert := model.CertificateModel{
		CertificateStudentID: userID,
		CertificateTitle:     title,
		CertificateIssuer:    issuer,
		CertificateIssuedAt:  issuedAt,
		CertificateFileURL:   fileURL,
	}
	if err := cc.DB.Create(&cert).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sertifikat")
	}

	// Kabari student sendiri + semua teacher approved
	var student userModel.UserModel
	if err := cc.DB.First(&student, "id = ?", userID).Error; err == nil {
		notifService.NotifyUser(cc.DB, userID,
			fmt.Sprintf("Sertifikat %q berhasil diunggah dan menunggu verifikasi.", title),
			notifModel.NotificationTypeCertificate, "certificate", "uploaded")

		var teacherIDs []uuid.UUID
		if err := cc.DB.Model(&userModel.UserModel{}).
			Where("role = ? AND user_teacher_approved = TRUE AND is_active = TRUE", constants.RoleTeacher).
			Pluck("id", &teacherIDs).Error; err == nil {
			notifService.NotifyUsers(cc.DB, teacherIDs,
				fmt.Sprintf("%s mengunggah sertifikat %q untuk diverifikasi.", student.DisplayName(), title),
				notifModel.NotificationTypeCertificate, "certificate", "pending")
		}

		mailer.SendBestEffort(student.Email, "Sertifikat diunggah",
			fmt.Sprintf("Halo %s, sertifikat %q Anda sudah masuk antrian verifikasi.", student.DisplayName(), title))
	}

	return helper.JsonCreated(c, "Sertifikat berhasil diunggah", dto.ToCertificateResponse(&cert))
}

// ====================== LIST ======================
// GET /api/u/certificates/me — sertifikat milik sendiri
func (cc *CertificateController) ListMyCertificates(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return cc.listCertificatesOf(c, userID)
}

// GET /api/u/certificates/student/:id — sertifikat student lain (yang verified saja untuk sesama student)
func (cc *CertificateController) ListStudentCertificates(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	role := helper.GetUserRole(c)
	if role == constants.RoleStudent {
		// sesama student hanya lihat yang sudah verified
		var certs []model.CertificateModel
		if err := cc.DB.Preload("Student").
			Where("certificate_student_id = ? AND certificate_verified = TRUE", studentID).
			Order("certificate_created_at DESC").
			Find(&certs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
		}
		return helper.JsonOK(c, "OK", toResponses(certs))
	}
	return cc.listCertificatesOf(c, studentID)
}

func (cc *CertificateController) listCertificatesOf(c *fiber.Ctx, studentID uuid.UUID) error {
	var certs []model.CertificateModel
	if err := cc.DB.Preload("Student").Preload("Verifier").
		Where("certificate_student_id = ?", studentID).
		Order("certificate_created_at DESC").
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}
	return helper.JsonOK(c, "OK", toResponses(certs))
}

func toResponses(certs []model.CertificateModel) []dto.CertificateResponse {
	out := make([]dto.CertificateResponse, 0, len(certs))
	for i := range certs {
		out = append(out, dto.ToCertificateResponse(&certs[i]))
	}
	return out
}

// ====================== PENDING (TEACHER) ======================
// GET /api/t/certificates/pending — antrian: belum verified dan belum ada feedback
func (cc *CertificateController) ListPendingCertificates(c *fiber.Ctx) error {
	var certs []model.CertificateModel
	if err := cc.DB.Preload("Student").
		Where("certificate_verified = FALSE AND certificate_feedback = ''").
		Order("certificate_created_at ASC").
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrian")
	}
	return helper.JsonOK(c, "OK", toResponses(certs))
}

// ====================== VERIFY (TEACHER) ======================
// PATCH /api/t/certificates/:id/verify — approve atau reject dengan feedback
func (cc *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	verifierID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.VerifyCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Feedback = strings.TrimSpace(req.Feedback)
	if !req.Approve && req.Feedback == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Feedback wajib diisi saat menolak")
	}

	var cert model.CertificateModel
	if err := cc.DB.Preload("Student").First(&cert, "certificate_id = ?", certID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}

	now := time.Now()
	updates := map[string]any{
		"certificate_verified":    req.Approve,
		"certificate_feedback":    req.Feedback,
		"certificate_verifier_id": verifierID,
		"certificate_verified_at": now,
	}
	if err := cc.DB.Model(&cert).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan verifikasi")
	}
	cert.CertificateVerified = req.Approve
	cert.CertificateFeedback = req.Feedback
	cert.CertificateVerifierID = &verifierID
	cert.CertificateVerifiedAt = &now

	// Kabari student pemilik
	verdict := "disetujui"
	if !req.Approve {
		verdict = "ditolak"
	}
	notifService.NotifyUser(cc.DB, cert.CertificateStudentID,
		fmt.Sprintf("Sertifikat %q Anda %s.", cert.CertificateTitle, verdict),
		notifModel.NotificationTypeCertificate, "certificate", verdict)

	if cert.Student != nil {
		body := fmt.Sprintf("Halo %s, sertifikat %q Anda %s.", cert.Student.DisplayName(), cert.CertificateTitle, verdict)
		if req.Feedback != "" {
			body += " Catatan: " + req.Feedback
		}
		mailer.SendBestEffort(cert.Student.Email, "Hasil verifikasi sertifikat", body)
	}

	return helper.JsonUpdated(c, "Verifikasi tersimpan", dto.ToCertificateResponse(&cert))
}

// ====================== DELETE (STUDENT/ADMIN) ======================
// Student hanya boleh menghapus sertifikat sendiri yang belum verified
func (cc *CertificateController) DeleteCertificate(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var cert model.CertificateModel
	if err := cc.DB.First(&cert, "certificate_id = ?", certID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin {
		if cert.CertificateStudentID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Bukan sertifikat Anda")
		}
		if cert.CertificateVerified {
			return helper.JsonError(c, fiber.StatusBadRequest, "Sertifikat yang sudah verified tidak bisa dihapus")
		}
	}

	if err := cc.DB.Delete(&cert).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sertifikat")
	}
	return helper.JsonDeleted(c, "Sertifikat berhasil dihapus", nil)
}

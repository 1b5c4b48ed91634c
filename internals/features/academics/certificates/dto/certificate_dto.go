package dto

import (
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/academics/certificates/model"
)

// ====================== REQUEST ======================

type VerifyCertificateRequest struct {
	Approve  bool   `json:"approve"`
	Feedback string `json:"feedback"`
}

// ====================== RESPONSE ======================

type CertificateResponse struct {
	CertificateID uuid.UUID  `json:"certificate_id"`
	StudentID     uuid.UUID  `json:"student_id"`
	StudentName   string     `json:"student_name,omitempty"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssuedAt      time.Time  `json:"issued_at"`
	FileURL       string     `json:"file_url"`
	Verified      bool       `json:"verified"`
	Feedback      string     `json:"feedback"`
	VerifierName  string     `json:"verifier_name,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// StatusOf menurunkan status dari kombinasi verified + feedback:
// pending = belum diverifikasi dan belum ada feedback,
// rejected = belum diverifikasi tapi sudah diberi feedback,
// verified = sudah disetujui.
func StatusOf(cert *model.CertificateModel) string {
	if cert.CertificateVerified {
		return "verified"
	}
	if cert.CertificateFeedback != "" {
		return "rejected"
	}
	return "pending"
}

func ToCertificateResponse(cert *model.CertificateModel) CertificateResponse {
	resp := CertificateResponse{
		CertificateID: cert.CertificateID,
		StudentID:     cert.CertificateStudentID,
		Title:         cert.CertificateTitle,
		Issuer:        cert.CertificateIssuer,
		IssuedAt:      cert.CertificateIssuedAt,
		FileURL:       cert.CertificateFileURL,
		Verified:      cert.CertificateVerified,
		Feedback:      cert.CertificateFeedback,
		VerifiedAt:    cert.CertificateVerifiedAt,
		Status:        StatusOf(cert),
		CreatedAt:     cert.CertificateCreatedAt,
	}
	if cert.Student != nil {
		resp.StudentName = cert.Student.DisplayName()
	}
	if cert.Verifier != nil {
		resp.VerifierName = cert.Verifier.DisplayName()
	}
	return resp
}

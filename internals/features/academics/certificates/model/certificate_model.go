package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "campustrack_backend/internals/features/users/user/model"
)

type CertificateModel struct {
	CertificateID        uuid.UUID `gorm:"column:certificate_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"certificate_id"`
	CertificateStudentID uuid.UUID `gorm:"column:certificate_student_id;type:uuid;not null;index" json:"certificate_student_id"`

	CertificateTitle    string    `gorm:"column:certificate_title;type:varchar(255);not null" json:"certificate_title"`
	CertificateIssuer   string    `gorm:"column:certificate_issuer;type:varchar(255)" json:"certificate_issuer"`
	CertificateIssuedAt time.Time `gorm:"column:certificate_issued_at" json:"certificate_issued_at"`
	CertificateFileURL  string    `gorm:"column:certificate_file_url;type:text;not null" json:"certificate_file_url"`

	// Verifikasi oleh teacher: verified=false + feedback kosong berarti masih antre
	CertificateVerified   bool       `gorm:"column:certificate_verified;not null;default:false" json:"certificate_verified"`
	CertificateFeedback   string     `gorm:"column:certificate_feedback;type:text;not null;default:''" json:"certificate_feedback"`
	CertificateVerifierID *uuid.UUID `gorm:"column:certificate_verifier_id;type:uuid" json:"certificate_verifier_id,omitempty"`
	CertificateVerifiedAt *time.Time `gorm:"column:certificate_verified_at" json:"certificate_verified_at,omitempty"`

	CertificateCreatedAt time.Time `gorm:"column:certificate_created_at;autoCreateTime;index" json:"certificate_created_at"`
	CertificateUpdatedAt time.Time `gorm:"column:certificate_updated_at;autoUpdateTime" json:"certificate_updated_at"`

	// Relations
	Student  *UserModel.UserModel `gorm:"foreignKey:CertificateStudentID" json:"student,omitempty"`
	Verifier *UserModel.UserModel `gorm:"foreignKey:CertificateVerifierID" json:"verifier,omitempty"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

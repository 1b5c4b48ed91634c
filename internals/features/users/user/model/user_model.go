package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campustrack_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName string    `gorm:"size:100" json:"full_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"password,omitempty" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`

	Role string `gorm:"type:varchar(20);not null;default:'student'" json:"role" validate:"omitempty,oneof=student teacher admin"`

	// Teacher baru menunggu approval admin sebelum kapabilitas teacher aktif
	UserTeacherApproved bool `gorm:"column:user_teacher_approved;not null;default:false" json:"user_teacher_approved"`

	// Cohort: student selalu punya maksimal satu pasangan (department, year)
	Department    *string `gorm:"size:100" json:"department,omitempty"`
	Year          *int    `gorm:"type:smallint" json:"year,omitempty"`
	UserStudentID *string `gorm:"column:user_student_id;size:20;unique" json:"user_student_id,omitempty"`

	SecurityQuestion string `gorm:"not null" json:"security_question"`
	SecurityAnswer   string `gorm:"size:255;not null" json:"security_answer,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
}

// DisplayName: nama lengkap kalau ada, fallback ke username
func (u *UserModel) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.UserName
}

// IsApprovedTeacher: kapabilitas teacher HANYA aktif setelah approval admin
func (u *UserModel) IsApprovedTeacher() bool {
	return u.Role == constants.RoleAdmin ||
		(u.Role == constants.RoleTeacher && u.UserTeacherApproved)
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	err := validate.Struct(u)
	if err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " wajib diisi."
			case "email":
				errorMessages[fieldErr.Field()] = "Format email tidak valid."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus salah satu dari " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Format tidak valid."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

// formatErrorMessage mengubah map error menjadi string
func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}

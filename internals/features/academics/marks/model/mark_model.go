package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "campustrack_backend/internals/features/users/user/model"
)

type MarkModel struct {
	MarkID        uuid.UUID `gorm:"column:mark_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"mark_id"`
	MarkStudentID uuid.UUID `gorm:"column:mark_student_id;type:uuid;not null;index" json:"mark_student_id"`
	MarkTeacherID uuid.UUID `gorm:"column:mark_teacher_id;type:uuid;not null" json:"mark_teacher_id"`

	MarkSubject  string  `gorm:"column:mark_subject;type:varchar(100);not null" json:"mark_subject"`
	MarkObtained float64 `gorm:"column:mark_obtained;not null" json:"mark_obtained"`
	MarkTotal    float64 `gorm:"column:mark_total;not null;default:100" json:"mark_total"`

	MarkCreatedAt time.Time `gorm:"column:mark_created_at;autoCreateTime;index" json:"mark_created_at"`
	MarkUpdatedAt time.Time `gorm:"column:mark_updated_at;autoUpdateTime" json:"mark_updated_at"`

	// Relations
	Student *UserModel.UserModel `gorm:"foreignKey:MarkStudentID" json:"student,omitempty"`
	Teacher *UserModel.UserModel `gorm:"foreignKey:MarkTeacherID" json:"teacher,omitempty"`
}

func (MarkModel) TableName() string {
	return "marks"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudentProfileModel: profil tambahan untuk user dengan role student.
// Dibuat otomatis saat register dan selalu maksimal satu per user.
type StudentProfileModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;unique;index" json:"user_id"`

	Bio       string         `gorm:"type:text" json:"bio"`
	AvatarURL string         `gorm:"size:500" json:"avatar_url"`
	Skills    datatypes.JSON `gorm:"type:jsonb" json:"skills"` // daftar skill bebas, array string
	LinkedIn  string         `gorm:"column:linkedin;size:255" json:"linkedin"`
	GitHub    string         `gorm:"column:github;size:255" json:"github"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

// TeacherProfileModel: profil tambahan untuk user dengan role teacher
type TeacherProfileModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;unique;index" json:"user_id"`

	Bio            string `gorm:"type:text" json:"bio"`
	AvatarURL      string `gorm:"size:500" json:"avatar_url"`
	Designation    string `gorm:"size:100" json:"designation"`
	Qualification  string `gorm:"size:255" json:"qualification"`
	ExperienceYrs  int    `gorm:"default:0" json:"experience_yrs"`
	Specialization string `gorm:"size:255" json:"specialization"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}

// DepartmentModel: daftar jurusan untuk dropdown register & scoping event
type DepartmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	Code      string    `gorm:"size:20;unique;not null" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campustrack_backend/internals/features/users/user/model"
)

// UserLite: representasi user yang aman dibagikan antar user
type UserLite struct {
	ID            uuid.UUID `json:"id"`
	UserName      string    `json:"user_name"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	Department    *string   `json:"department,omitempty"`
	Year          *int      `json:"year,omitempty"`
	UserStudentID *string   `json:"user_student_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToUserLite(u *model.UserModel) UserLite {
	return UserLite{
		ID:            u.ID,
		UserName:      u.UserName,
		FullName:      u.FullName,
		Role:          u.Role,
		Department:    u.Department,
		Year:          u.Year,
		UserStudentID: u.UserStudentID,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
	}
}

// UpdateProfileRequest: field yang boleh diubah user sendiri
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
	Skills   *[]string `json:"skills"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`

	// khusus teacher
	Designation    *string `json:"designation"`
	Qualification  *string `json:"qualification"`
	ExperienceYrs  *int    `json:"experience_yrs"`
	Specialization *string `json:"specialization"`
}

// StudentProfileResponse menggabungkan user + profil student
type StudentProfileResponse struct {
	User      UserLite       `json:"user"`
	Bio       string         `json:"bio"`
	AvatarURL string         `json:"avatar_url"`
	Skills    datatypes.JSON `json:"skills"`
	LinkedIn  string         `json:"linkedin"`
	GitHub    string         `json:"github"`
}

func ToStudentProfileResponse(u *model.UserModel, p *model.StudentProfileModel) StudentProfileResponse {
	resp := StudentProfileResponse{User: ToUserLite(u)}
	if p != nil {
		resp.Bio = p.Bio
		resp.AvatarURL = p.AvatarURL
		resp.Skills = p.Skills
		resp.LinkedIn = p.LinkedIn
		resp.GitHub = p.GitHub
	}
	return resp
}

// TeacherProfileResponse menggabungkan user + profil teacher
type TeacherProfileResponse struct {
	User           UserLite `json:"user"`
	Bio            string   `json:"bio"`
	AvatarURL      string   `json:"avatar_url"`
	Designation    string   `json:"designation"`
	Qualification  string   `json:"qualification"`
	ExperienceYrs  int      `json:"experience_yrs"`
	Specialization string   `json:"specialization"`
	Approved       bool     `json:"approved"`
}

func ToTeacherProfileResponse(u *model.UserModel, p *model.TeacherProfileModel) TeacherProfileResponse {
	resp := TeacherProfileResponse{User: ToUserLite(u), Approved: u.UserTeacherApproved}
	if p != nil {
		resp.Bio = p.Bio
		resp.AvatarURL = p.AvatarURL
		resp.Designation = p.Designation
		resp.Qualification = p.Qualification
		resp.ExperienceYrs = p.ExperienceYrs
		resp.Specialization = p.Specialization
	}
	return resp
}

// PendingTeacherResponse: antrian approval untuk admin
type PendingTeacherResponse struct {
	ID           uuid.UUID `json:"id"`
	UserName     string    `json:"user_name"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

func ToPendingTeacherResponse(u *model.UserModel) PendingTeacherResponse {
	return PendingTeacherResponse{
		ID:           u.ID,
		UserName:     u.UserName,
		FullName:     u.FullName,
		Email:        u.Email,
		RegisteredAt: u.CreatedAt,
	}
}

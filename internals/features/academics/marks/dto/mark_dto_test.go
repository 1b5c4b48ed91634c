package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/academics/marks/model"
	userModel "campustrack_backend/internals/features/users/user/model"
)

func TestToMarkResponse(t *testing.T) {
	created := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	m := model.MarkModel{
		MarkID:        uuid.New(),
		MarkStudentID: uuid.New(),
		MarkTeacherID: uuid.New(),
		MarkSubject:   "Kalkulus",
		MarkObtained:  8,
		MarkTotal:     10,
		MarkCreatedAt: created,
		Student:       &userModel.UserModel{UserName: "budi", FullName: "Budi Santoso"},
	}

	got := ToMarkResponse(&m)
	if got.Percentage != 80 {
		t.Errorf("Percentage = %v, want 80", got.Percentage)
	}
	if got.Semester != "2025 S1" {
		t.Errorf("Semester = %q, want \"2025 S1\"", got.Semester)
	}
	if got.StudentName != "Budi Santoso" {
		t.Errorf("StudentName = %q", got.StudentName)
	}
	if got.TeacherName != "" {
		t.Errorf("TeacherName seharusnya kosong tanpa relasi, dapat %q", got.TeacherName)
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/academics/marks/model"
	"campustrack_backend/internals/features/academics/marks/service"
)

// ====================== REQUEST ======================

type CreateMarkRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Subject   string    `json:"subject" validate:"required,min=1,max=100"`
	Obtained  float64   `json:"obtained" validate:"gte=0"`
	Total     float64   `json:"total" validate:"gt=0"`
}

type UpdateMarkRequest struct {
	Subject  *string  `json:"subject"`
	Obtained *float64 `json:"obtained"`
	Total    *float64 `json:"total"`
}

// ====================== RESPONSE ======================

type MarkResponse struct {
	MarkID      uuid.UUID `json:"mark_id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	TeacherName string    `json:"teacher_name,omitempty"`
	Subject     string    `json:"subject"`
	Obtained    float64   `json:"obtained"`
	Total       float64   `json:"total"`
	Percentage  float64   `json:"percentage"`
	Semester    string    `json:"semester"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToMarkResponse(m *model.MarkModel) MarkResponse {
	resp := MarkResponse{
		MarkID:     m.MarkID,
		StudentID:  m.MarkStudentID,
		TeacherID:  m.MarkTeacherID,
		Subject:    m.MarkSubject,
		Obtained:   m.MarkObtained,
		Total:      m.MarkTotal,
		Percentage: service.Percentage(m.MarkObtained, m.MarkTotal),
		Semester:   service.SemesterLabel(m.MarkCreatedAt),
		CreatedAt:  m.MarkCreatedAt,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.DisplayName()
	}
	if m.Teacher != nil {
		resp.TeacherName = m.Teacher.DisplayName()
	}
	return resp
}

// BulkImportRowError: baris spreadsheet yang gagal diproses
type BulkImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type BulkImportResult struct {
	Imported int                  `json:"imported"`
	Skipped  int                  `json:"skipped"`
	Errors   []BulkImportRowError `json:"errors"`
}

// StudentAvailabilityRow: hasil cek keberadaan student per baris spreadsheet
type StudentAvailabilityRow struct {
	Row       int    `json:"row"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Exists    bool   `json:"exists"`
}

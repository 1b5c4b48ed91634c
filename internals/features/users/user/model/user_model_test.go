package model

import (
	"testing"

	"campustrack_backend/internals/constants"
)

func TestDisplayName(t *testing.T) {
	u := UserModel{UserName: "budi", FullName: "Budi Santoso"}
	if got := u.DisplayName(); got != "Budi Santoso" {
		t.Errorf("DisplayName = %q, want full name", got)
	}

	u.FullName = ""
	if got := u.DisplayName(); got != "budi" {
		t.Errorf("DisplayName = %q, want username fallback", got)
	}
}

func TestIsApprovedTeacher(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		approved bool
		want     bool
	}{
		{"teacher belum disetujui", constants.RoleTeacher, false, false},
		{"teacher disetujui", constants.RoleTeacher, true, true},
		{"admin selalu lolos", constants.RoleAdmin, false, true},
		{"student tidak pernah", constants.RoleStudent, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := UserModel{Role: tt.role, UserTeacherApproved: tt.approved}
			if got := u.IsApprovedTeacher(); got != tt.want {
				t.Errorf("IsApprovedTeacher = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateDefaultsRole(t *testing.T) {
	u := UserModel{
		UserName: "budi",
		Email:    "budi@kampus.ac.id",
		Password: "rahasia123",
	}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if u.Role != constants.RoleStudent {
		t.Errorf("Role default = %q, want %q", u.Role, constants.RoleStudent)
	}
}

func TestValidateRejectsBadInput(t *testing.T) {
	u := UserModel{
		UserName: "ab",
		Email:    "bukan-email",
		Password: "pendek",
		Role:     "superuser",
	}
	if err := u.Validate(); err == nil {
		t.Errorf("input invalid seharusnya ditolak")
	}
}

package dto

import (
	"testing"

	"campustrack_backend/internals/features/academics/certificates/model"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		verified bool
		feedback string
		want     string
	}{
		{"baru diupload", false, "", "pending"},
		{"ditolak dengan feedback", false, "File tidak terbaca", "rejected"},
		{"disetujui", true, "", "verified"},
		{"disetujui dengan catatan", true, "Bagus", "verified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := model.CertificateModel{
				CertificateVerified: tt.verified,
				CertificateFeedback: tt.feedback,
			}
			if got := StatusOf(&cert); got != tt.want {
				t.Errorf("StatusOf = %q, want %q", got, tt.want)
			}
		})
	}
}

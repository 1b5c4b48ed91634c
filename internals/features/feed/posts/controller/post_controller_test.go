package controller

import (
	"strings"
	"testing"
)

func TestPreviewOf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"pendek apa adanya", "halo", "halo"},
		{"pas 30 rune", strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{"dipotong 30 rune", strings.Repeat("a", 31), strings.Repeat("a", 30)},
		{"multibyte aman", strings.Repeat("日", 35), strings.Repeat("日", 30)},
		{"kosong", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := previewOf(tt.input); got != tt.want {
				t.Errorf("previewOf: dapat %d rune, want %d rune", len([]rune(got)), len([]rune(tt.want)))
			}
		})
	}
}

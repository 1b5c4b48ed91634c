package service

import "testing"

func TestNormalizeCommentContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "halo dunia", "halo dunia"},
		{"leading trailing", "  halo dunia  ", "halo dunia"},
		{"internal runs", "halo    dunia", "halo dunia"},
		{"tabs and newlines", "halo\t\ndunia\n", "halo dunia"},
		{"empty", "", ""},
		{"whitespace only", "   \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCommentContent(tt.input); got != tt.want {
				t.Errorf("NormalizeCommentContent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

package controller

import "testing"

func TestHeaderMatches(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"persis", []string{"Student ID", "Subject", "Marks"}, true},
		{"case insensitive", []string{"student id", "SUBJECT", "marks"}, true},
		{"dengan spasi", []string{" Student ID ", "Subject", "Marks"}, true},
		{"kolom ekstra tetap lolos", []string{"Student ID", "Subject", "Marks", "Catatan"}, true},
		{"urutan salah", []string{"Subject", "Student ID", "Marks"}, false},
		{"kurang kolom", []string{"Student ID", "Subject"}, false},
		{"kosong", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headerMatches(tt.row); got != tt.want {
				t.Errorf("headerMatches(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestIsBlankRow(t *testing.T) {
	if !isBlankRow(nil) {
		t.Errorf("baris nil seharusnya blank")
	}
	if !isBlankRow([]string{"", "  ", "\t"}) {
		t.Errorf("baris whitespace seharusnya blank")
	}
	if isBlankRow([]string{"", "CT2025ST0001", ""}) {
		t.Errorf("baris berisi seharusnya tidak blank")
	}
}

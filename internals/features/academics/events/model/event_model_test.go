package model

import (
	"testing"
	"time"
)

func TestEventStatus(t *testing.T) {
	from := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.May, 12, 17, 0, 0, 0, time.UTC)
	e := EventModel{EventDateFrom: from, EventDateTo: to}

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"sebelum mulai", from.Add(-time.Hour), "upcoming"},
		{"pas mulai", from, "ongoing"},
		{"di tengah", from.Add(24 * time.Hour), "ongoing"},
		{"pas selesai", to, "ongoing"},
		{"setelah selesai", to.Add(time.Minute), "completed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Status(tt.now); got != tt.want {
				t.Errorf("Status(%v) = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}

func TestEventRegistrationOpen(t *testing.T) {
	from := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)

	withLink := EventModel{EventDateFrom: from, EventRegistrationLink: "https://forms.example.com/abc"}
	if !withLink.RegistrationOpen(from.Add(-time.Hour)) {
		t.Errorf("registrasi seharusnya terbuka sebelum event mulai")
	}
	if withLink.RegistrationOpen(from) {
		t.Errorf("registrasi seharusnya tertutup saat event mulai")
	}

	noLink := EventModel{EventDateFrom: from}
	if noLink.RegistrationOpen(from.Add(-time.Hour)) {
		t.Errorf("tanpa link registrasi tidak pernah terbuka")
	}
}

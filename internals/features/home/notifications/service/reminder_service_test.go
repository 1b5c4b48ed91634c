package service

import "testing"

// reminderContent dipakai sebagai kunci dedup di DB, jadi formatnya
// tidak boleh berubah diam-diam.
func TestReminderContent(t *testing.T) {
	tests := []struct {
		name  string
		kind  ReminderKind
		title string
		want  string
	}{
		{"starting soon", ReminderStartingSoon, "Tech Expo", `Event "Tech Expo" starting soon`},
		{"registration", ReminderRegistration, "Tech Expo", `Registration reminder: "Tech Expo"`},
		{"title dengan kutip", ReminderStartingSoon, `Expo "2025"`, `Event "Expo \"2025\"" starting soon`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reminderContent(tt.kind, tt.title); got != tt.want {
				t.Errorf("reminderContent = %q, want %q", got, tt.want)
			}
		})
	}
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/academics/marks/model"
)

func mark(obtained, total float64, at time.Time) model.MarkModel {
	return model.MarkModel{MarkObtained: obtained, MarkTotal: total, MarkCreatedAt: at}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		total    float64
		want     float64
	}{
		{"half", 10, 20, 50},
		{"full", 100, 100, 100},
		{"zero total", 5, 0, 0},
		{"negative total", 5, -10, 0},
		{"zero obtained", 0, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.obtained, tt.total); got != tt.want {
				t.Errorf("Percentage(%v, %v) = %v, want %v", tt.obtained, tt.total, got, tt.want)
			}
		})
	}
}

func TestAverageOfPercentages(t *testing.T) {
	now := time.Now()

	t.Run("empty", func(t *testing.T) {
		if got := AverageOfPercentages(nil); got != 0 {
			t.Errorf("AverageOfPercentages(nil) = %v, want 0", got)
		}
	})

	t.Run("per-record average, not pooled totals", func(t *testing.T) {
		marks := []model.MarkModel{
			mark(10, 20, now), // 50%
			mark(8, 10, now),  // 80%
		}
		// (50 + 80) / 2 = 65, bukan 18/30 = 60
		if got := AverageOfPercentages(marks); got != 65 {
			t.Errorf("AverageOfPercentages = %v, want 65", got)
		}
	})

	t.Run("broken record counts as zero", func(t *testing.T) {
		marks := []model.MarkModel{
			mark(10, 0, now),
			mark(80, 100, now),
		}
		if got := AverageOfPercentages(marks); got != 40 {
			t.Errorf("AverageOfPercentages = %v, want 40", got)
		}
	})
}

func TestSemesterLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"january", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "2025 S1"},
		{"june boundary", time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC), "2025 S1"},
		{"july boundary", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), "2025 S2"},
		{"december", time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC), "2024 S2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SemesterLabel(tt.date); got != tt.want {
				t.Errorf("SemesterLabel(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestSemesterRangeFor(t *testing.T) {
	from, to := SemesterRangeFor(time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC))
	if from.Month() != time.January || to.Month() != time.June || from.Year() != 2025 {
		t.Errorf("range S1 salah: %v - %v", from, to)
	}

	from, to = SemesterRangeFor(time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC))
	if from.Month() != time.July || to.Month() != time.December || to.Year() != 2025 {
		t.Errorf("range S2 salah: %v - %v", from, to)
	}
}

func TestSemesterAverages(t *testing.T) {
	s1 := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	s2 := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	marks := []model.MarkModel{
		mark(50, 100, s1),
		mark(90, 100, s2),
		mark(70, 100, s1),
	}

	got := SemesterAverages(marks)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// urutan mengikuti kemunculan pertama
	if got[0].Semester != "2025 S1" || got[1].Semester != "2025 S2" {
		t.Errorf("urutan semester salah: %+v", got)
	}
	if got[0].Average != 60 || got[0].Count != 2 {
		t.Errorf("stat S1 = %+v, want average 60 count 2", got[0])
	}
	if got[1].Average != 90 || got[1].Count != 1 {
		t.Errorf("stat S2 = %+v, want average 90 count 1", got[1])
	}
}

func TestSubjectAverages(t *testing.T) {
	now := time.Now()
	marks := []model.MarkModel{
		{MarkSubject: "Kalkulus", MarkObtained: 50, MarkTotal: 100, MarkCreatedAt: now},
		{MarkSubject: "Fisika", MarkObtained: 90, MarkTotal: 100, MarkCreatedAt: now},
		{MarkSubject: "Kalkulus", MarkObtained: 70, MarkTotal: 100, MarkCreatedAt: now},
	}

	got := SubjectAverages(marks)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Subject != "Kalkulus" || got[0].Average != 60 || got[0].Count != 2 {
		t.Errorf("stat Kalkulus = %+v, want average 60 count 2", got[0])
	}
	if got[1].Subject != "Fisika" || got[1].Average != 90 {
		t.Errorf("stat Fisika = %+v, want average 90", got[1])
	}
}

func TestMonthlyBuckets(t *testing.T) {
	now := time.Date(2025, time.August, 15, 12, 0, 0, 0, time.UTC)

	timestamps := []time.Time{
		time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.September, 5, 0, 0, 0, 0, time.UTC),
		// di luar jendela 12 bulan, harus diabaikan
		time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC),
	}

	got := MonthlyBuckets(timestamps, now)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[0].Month != "Sep 2024" {
		t.Errorf("bucket pertama = %q, want \"Sep 2024\"", got[0].Month)
	}
	if got[11].Month != "Aug 2025" {
		t.Errorf("bucket terakhir = %q, want \"Aug 2025\"", got[11].Month)
	}
	if got[0].Count != 1 {
		t.Errorf("count Sep 2024 = %d, want 1", got[0].Count)
	}
	if got[11].Count != 2 {
		t.Errorf("count Aug 2025 = %d, want 2", got[11].Count)
	}
	for _, b := range got[1:11] {
		if b.Count != 0 {
			t.Errorf("bucket %q seharusnya 0, dapat %d", b.Month, b.Count)
		}
	}
}

func TestRankCohort(t *testing.T) {
	a := CohortMember{UserID: uuid.New(), Name: "A", Average: 80, HasRecords: true}
	b := CohortMember{UserID: uuid.New(), Name: "B", Average: 95, HasRecords: true}
	c := CohortMember{UserID: uuid.New(), Name: "C", HasRecords: false}
	d := CohortMember{UserID: uuid.New(), Name: "D", Average: 80, HasRecords: true}

	ranked := RankCohort([]CohortMember{a, b, c, d})
	if len(ranked) != 4 {
		t.Fatalf("len = %d, want 4", len(ranked))
	}

	order := []string{"B", "A", "D", "C"}
	for i, want := range order {
		if ranked[i].Name != want {
			t.Errorf("posisi %d = %s, want %s", i+1, ranked[i].Name, want)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("rank posisi %d = %d, want %d", i, ranked[i].Rank, i+1)
		}
	}

	// tanpa record selalu di bawah, meski average 0 vs 0
	if ranked[3].HasRecords {
		t.Errorf("posisi terakhir seharusnya tanpa record")
	}
}

func TestFindRank(t *testing.T) {
	me := uuid.New()
	ranked := RankCohort([]CohortMember{
		{UserID: uuid.New(), Average: 90, HasRecords: true},
		{UserID: me, Average: 70, HasRecords: true},
	})

	if got := FindRank(ranked, me); got != 2 {
		t.Errorf("FindRank = %d, want 2", got)
	}
	if got := FindRank(ranked, uuid.New()); got != 0 {
		t.Errorf("FindRank user asing = %d, want 0", got)
	}
}

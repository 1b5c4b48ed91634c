// internals/features/academics/marks/service/analytics_service.go
//
// Fungsi murni untuk agregasi nilai: persentase, rata-rata, semester,
// bucket bulanan, dan ranking cohort. Query DB ada di leaderboard_service.go.
package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/academics/marks/model"
)

// Percentage menghitung persen perolehan satu record nilai.
// Total <= 0 dianggap record rusak, hasilnya 0.
func Percentage(obtained, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return obtained / total * 100
}

// AverageOfPercentages: rata-rata dari persentase PER RECORD, bukan
// total perolehan dibagi total maksimum. Record 10/20 dan 8/10
// menghasilkan (50 + 80) / 2 = 65, bukan 18/30 = 60.
func AverageOfPercentages(marks []model.MarkModel) float64 {
	if len(marks) == 0 {
		return 0
	}
	var sum float64
	for i := range marks {
		sum += Percentage(marks[i].MarkObtained, marks[i].MarkTotal)
	}
	return sum / float64(len(marks))
}

// SemesterLabel memetakan tanggal ke label semester kalender:
// bulan 1-6 = S1, bulan 7-12 = S2.
func SemesterLabel(t time.Time) string {
	t = t.UTC()
	n := 1
	if t.Month() > time.June {
		n = 2
	}
	return fmt.Sprintf("%d S%d", t.Year(), n)
}

// SemesterRangeFor mengembalikan awal-akhir semester kalender dari tanggal anchor
func SemesterRangeFor(anchor time.Time) (time.Time, time.Time) {
	anchor = anchor.UTC()
	y := anchor.Year()
	if anchor.Month() <= time.June {
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(y, time.June, 30, 23, 59, 59, 0, time.UTC)
	}
	return time.Date(y, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(y, time.December, 31, 23, 59, 59, 0, time.UTC)
}

type SemesterStat struct {
	Semester string  `json:"semester"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// SemesterAverages mengelompokkan record per semester, urutan mengikuti
// kemunculan pertama di input (bukan urutan kronologis paksa).
func SemesterAverages(marks []model.MarkModel) []SemesterStat {
	order := make([]string, 0)
	grouped := make(map[string][]model.MarkModel)

	for i := range marks {
		label := SemesterLabel(marks[i].MarkCreatedAt)
		if _, seen := grouped[label]; !seen {
			order = append(order, label)
		}
		grouped[label] = append(grouped[label], marks[i])
	}

	out := make([]SemesterStat, 0, len(order))
	for _, label := range order {
		out = append(out, SemesterStat{
			Semester: label,
			Average:  AverageOfPercentages(grouped[label]),
			Count:    len(grouped[label]),
		})
	}
	return out
}

type SubjectStat struct {
	Subject string  `json:"subject"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// SubjectAverages mengelompokkan record per mata kuliah, urutan mengikuti
// kemunculan pertama di input.
func SubjectAverages(marks []model.MarkModel) []SubjectStat {
	order := make([]string, 0)
	grouped := make(map[string][]model.MarkModel)

	for i := range marks {
		subject := marks[i].MarkSubject
		if _, seen := grouped[subject]; !seen {
			order = append(order, subject)
		}
		grouped[subject] = append(grouped[subject], marks[i])
	}

	out := make([]SubjectStat, 0, len(order))
	for _, subject := range order {
		out = append(out, SubjectStat{
			Subject: subject,
			Average: AverageOfPercentages(grouped[subject]),
			Count:   len(grouped[subject]),
		})
	}
	return out
}

type MonthlyBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MonthlyBuckets menghitung jumlah kejadian per bulan untuk 12 bulan
// terakhir (termasuk bulan berjalan). Selalu tepat 12 bucket, bulan
// tertua dulu, bulan tanpa kejadian tetap muncul dengan count 0.
func MonthlyBuckets(timestamps []time.Time, now time.Time) []MonthlyBucket {
	now = now.UTC()
	counts := make(map[string]int, 12)

	out := make([]MonthlyBucket, 0, 12)
	for i := 11; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		label := m.Format("Jan 2006")
		counts[label] = 0
		out = append(out, MonthlyBucket{Month: label})
	}

	for _, ts := range timestamps {
		label := ts.UTC().Format("Jan 2006")
		if _, ok := counts[label]; ok {
			counts[label]++
		}
	}
	for i := range out {
		out[i].Count = counts[out[i].Month]
	}
	return out
}

// ====================== RANKING ======================

type CohortMember struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	StudentID  string    `json:"student_id"`
	Average    float64   `json:"average"`
	HasRecords bool      `json:"has_records"`
}

type RankedMember struct {
	Rank int `json:"rank"`
	CohortMember
}

// RankCohort mengurutkan anggota cohort berdasarkan rata-rata menurun.
// Anggota tanpa record nilai selalu di bawah yang punya record.
// Rank mulai dari 1; nilai seri mempertahankan urutan input (stable sort).
func RankCohort(members []CohortMember) []RankedMember {
	sorted := make([]CohortMember, len(members))
	copy(sorted, members)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].HasRecords != sorted[j].HasRecords {
			return sorted[i].HasRecords
		}
		return sorted[i].Average > sorted[j].Average
	})

	out := make([]RankedMember, len(sorted))
	for i, m := range sorted {
		out[i] = RankedMember{Rank: i + 1, CohortMember: m}
	}
	return out
}

// FindRank mencari posisi user di hasil ranking; 0 kalau tidak ada
func FindRank(ranked []RankedMember, userID uuid.UUID) int {
	for _, r := range ranked {
		if r.UserID == userID {
			return r.Rank
		}
	}
	return 0
}

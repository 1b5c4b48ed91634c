// internals/features/academics/marks/service/leaderboard_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/academics/marks/model"
	userModel "campustrack_backend/internals/features/users/user/model"
)

// CohortMembers mengambil semua student aktif satu cohort (department + year)
// beserta rata-rata nilainya. Urutan query (created_at ASC) dipakai sebagai
// tie-break ranking supaya hasil deterministik.
func CohortMembers(db *gorm.DB, department string, year int) ([]CohortMember, error) {
	var students []userModel.UserModel
	if err := db.
		Where("role = ? AND is_active = TRUE AND department = ? AND year = ?",
			constants.RoleStudent, department, year).
		Order("created_at ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	members := make([]CohortMember, 0, len(students))
	for i := range students {
		var marks []model.MarkModel
		if err := db.
			Where("mark_student_id = ?", students[i].ID).
			Find(&marks).Error; err != nil {
			return nil, err
		}

		m := CohortMember{
			UserID:     students[i].ID,
			Name:       students[i].DisplayName(),
			HasRecords: len(marks) > 0,
			Average:    AverageOfPercentages(marks),
		}
		if students[i].UserStudentID != nil {
			m.StudentID = *students[i].UserStudentID
		}
		members = append(members, m)
	}
	return members, nil
}

// CohortLeaderboard: ranking lengkap satu cohort
func CohortLeaderboard(db *gorm.DB, department string, year int) ([]RankedMember, error) {
	members, err := CohortMembers(db, department, year)
	if err != nil {
		return nil, err
	}
	return RankCohort(members), nil
}

type SemesterRank struct {
	Semester string `json:"semester"`
	Rank     int    `json:"rank"` // 0 = tidak masuk ranking di semester itu
	Ranked   bool   `json:"ranked"`
}

// LeaderboardHistory menghitung posisi ranking student per semester,
// dari semester record nilai cohort paling awal sampai semester berjalan.
// Semester tanpa record milik student tetap muncul dengan ranked=false.
func LeaderboardHistory(db *gorm.DB, student *userModel.UserModel) ([]SemesterRank, error) {
	if student.Department == nil || student.Year == nil {
		return []SemesterRank{}, nil
	}

	// record cohort paling awal menentukan titik mulai riwayat
	var earliest time.Time
	err := db.Raw(`
		SELECT MIN(m.mark_created_at)
		FROM marks m
		JOIN users u ON u.id = m.mark_student_id
		WHERE u.department = ? AND u.year = ?`,
		*student.Department, *student.Year).
		Scan(&earliest).Error
	if err != nil {
		return nil, err
	}
	if earliest.IsZero() {
		return []SemesterRank{}, nil
	}

	members, err := CohortMembers(db, *student.Department, *student.Year)
	if err != nil {
		return nil, err
	}

	out := make([]SemesterRank, 0, 4)
	now := time.Now().UTC()
	anchor, _ := SemesterRangeFor(earliest)
	for ; !anchor.After(now); anchor = anchor.AddDate(0, 6, 0) {
		start, end := SemesterRangeFor(anchor)
		rank, ranked, err := semesterRankFor(db, members, student.ID, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, SemesterRank{
			Semester: SemesterLabel(start),
			Rank:     rank,
			Ranked:   ranked,
		})
	}
	return out, nil
}

// semesterRankFor menghitung ulang ranking cohort hanya dengan record di
// jendela semester tertentu. Student tanpa record di jendela itu tidak
// masuk ranking (ranked=false).
func semesterRankFor(db *gorm.DB, members []CohortMember, studentID uuid.UUID, start, end time.Time) (int, bool, error) {
	windowed := make([]CohortMember, 0, len(members))
	studentHasRecords := false

	for _, m := range members {
		var marks []model.MarkModel
		if err := db.
			Where("mark_student_id = ? AND mark_created_at BETWEEN ? AND ?", m.UserID, start, end).
			Find(&marks).Error; err != nil {
			return 0, false, err
		}
		if len(marks) == 0 {
			continue
		}
		if m.UserID == studentID {
			studentHasRecords = true
		}
		windowed = append(windowed, CohortMember{
			UserID:     m.UserID,
			Name:       m.Name,
			StudentID:  m.StudentID,
			Average:    AverageOfPercentages(marks),
			HasRecords: true,
		})
	}

	if !studentHasRecords {
		return 0, false, nil
	}
	return FindRank(RankCohort(windowed), studentID), true, nil
}

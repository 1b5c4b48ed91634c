package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	certModel "campustrack_backend/internals/features/academics/certificates/model"
	eventModel "campustrack_backend/internals/features/academics/events/model"
	"campustrack_backend/internals/features/academics/marks/model"
	"campustrack_backend/internals/features/academics/marks/service"
	postModel "campustrack_backend/internals/features/feed/posts/model"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// ====================== DASHBOARD (STUDENT) ======================
// GET /api/u/analytics/dashboard — ringkasan akademik untuk student login
func (ac *AnalyticsController) StudentDashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student userModel.UserModel
	if err := ac.DB.First(&student, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var marks []model.MarkModel
	if err := ac.DB.Where("mark_student_id = ?", userID).
		Order("mark_created_at ASC").
		Find(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	rank := 0
	cohortSize := 0
	var top []service.RankedMember
	if student.Department != nil && student.Year != nil {
		ranked, err := service.CohortLeaderboard(ac.DB, *student.Department, *student.Year)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ranking")
		}
		rank = service.FindRank(ranked, userID)
		cohortSize = len(ranked)
		top = topOf(ranked, 5)
	}

	// Feed terbaru + event yang relevan + notifikasi terakhir, satu layar dashboard
	var recentPosts []postModel.PostModel
	if err := ac.DB.Preload("User").
		Order("post_created_at DESC").
		Limit(5).
		Find(&recentPosts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feed")
	}

	eventScope := ac.DB.Where("event_scope = ?", eventModel.EventScopeCollege)
	if student.Department != nil {
		eventScope = eventScope.Or("event_scope = ? AND event_department = ?",
			eventModel.EventScopeDepartment, *student.Department)
	}
	var upcomingEvents []eventModel.EventModel
	if err := ac.DB.Where(eventScope).
		Where("event_date_to >= ?", time.Now()).
		Order("event_date_from ASC").
		Limit(5).
		Find(&upcomingEvents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var latestNotifications []notifModel.NotificationModel
	if err := ac.DB.Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(5).
		Find(&latestNotifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"average":              service.AverageOfPercentages(marks),
		"total_records":        len(marks),
		"rank":                 rank,
		"cohort_size":          cohortSize,
		"leaderboard_top":      top,
		"semester_averages":    service.SemesterAverages(marks),
		"recent_posts":         recentPosts,
		"upcoming_events":      upcomingEvents,
		"latest_notifications": latestNotifications,
	})
}

// ====================== LEADERBOARD ======================
// GET /api/u/analytics/leaderboard — cohort sendiri, atau ?department=&year= untuk teacher/admin
func (ac *AnalyticsController) Leaderboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	department := c.Query("department")
	year := c.QueryInt("year", 0)

	if department == "" || year == 0 {
		var viewer userModel.UserModel
		if err := ac.DB.First(&viewer, "id = ?", userID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		if viewer.Department == nil || viewer.Year == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Cohort tidak diketahui, sertakan ?department= dan ?year=")
		}
		department = *viewer.Department
		year = *viewer.Year
	}

	ranked, err := service.CohortLeaderboard(ac.DB, department, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung leaderboard")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"department":  department,
		"year":        year,
		"leaderboard": ranked,
	})
}

// ====================== PROFILE ANALYTICS ======================
// GET /api/u/analytics/profile/:id — grafik profil: rata-rata per semester,
// sertifikat per bulan (12 bulan terakhir), riwayat posisi leaderboard
func (ac *AnalyticsController) ProfileAnalytics(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var student userModel.UserModel
	if err := ac.DB.First(&student, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if student.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "Analytics hanya tersedia untuk student")
	}

	var marks []model.MarkModel
	if err := ac.DB.Where("mark_student_id = ?", targetID).
		Order("mark_created_at ASC").
		Find(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	var certDates []time.Time
	if err := ac.DB.Model(&certModel.CertificateModel{}).
		Where("certificate_student_id = ? AND certificate_verified = TRUE", targetID).
		Pluck("certificate_created_at", &certDates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	history, err := service.LeaderboardHistory(ac.DB, &student)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung riwayat ranking")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"semester_averages":      service.SemesterAverages(marks),
		"certificates_per_month": service.MonthlyBuckets(certDates, time.Now()),
		"leaderboard_history":    history,
		"overall_average":        service.AverageOfPercentages(marks),
	})
}

// ====================== STUDENT INSIGHTS (TEACHER) ======================
// GET /api/t/analytics/students — agregat per cohort untuk teacher:
// jumlah student, rata-rata cohort, dan siapa yang di bawah ambang
func (ac *AnalyticsController) StudentInsights(c *fiber.Ctx) error {
	department := c.Query("department")
	year := c.QueryInt("year", 0)
	if department == "" || year == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "department dan year wajib diisi")
	}
	threshold := float64(c.QueryInt("threshold", 50))

	members, err := service.CohortMembers(ac.DB, department, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data cohort")
	}

	var cohortSum float64
	withRecords := 0
	struggling := make([]service.CohortMember, 0)
	for _, m := range members {
		if !m.HasRecords {
			continue
		}
		withRecords++
		cohortSum += m.Average
		if m.Average < threshold {
			struggling = append(struggling, m)
		}
	}

	cohortAverage := 0.0
	if withRecords > 0 {
		cohortAverage = cohortSum / float64(withRecords)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"department":      department,
		"year":            year,
		"total_students":  len(members),
		"with_records":    withRecords,
		"cohort_average":  cohortAverage,
		"threshold":       threshold,
		"struggling":      struggling,
		"leaderboard_top": topOf(service.RankCohort(members), 5),
	})
}

func topOf(ranked []service.RankedMember, n int) []service.RankedMember {
	if len(ranked) < n {
		return ranked
	}
	return ranked[:n]
}

// ====================== STUDENT INSIGHT DETAIL (TEACHER) ======================
// GET /api/t/analytics/students/:id — profil akademik satu student: rata-rata
// keseluruhan, rata-rata per mata kuliah, jumlah sertifikat, aktivitas feed terakhir
func (ac *AnalyticsController) StudentInsightDetail(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var student userModel.UserModel
	if err := ac.DB.First(&student, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if student.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "Insight hanya tersedia untuk student")
	}

	var marks []model.MarkModel
	if err := ac.DB.Where("mark_student_id = ?", targetID).
		Order("mark_created_at DESC").
		Find(&marks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	var totalCerts, verifiedCerts int64
	if err := ac.DB.Model(&certModel.CertificateModel{}).
		Where("certificate_student_id = ?", targetID).
		Count(&totalCerts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sertifikat")
	}
	if err := ac.DB.Model(&certModel.CertificateModel{}).
		Where("certificate_student_id = ? AND certificate_verified = TRUE", targetID).
		Count(&verifiedCerts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sertifikat")
	}

	var recentPosts []postModel.PostModel
	if err := ac.DB.Where("post_user_id = ?", targetID).
		Order("post_created_at DESC").
		Limit(6).
		Find(&recentPosts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	var recentComments []postModel.CommentModel
	if err := ac.DB.Where("comment_user_id = ?", targetID).
		Order("comment_created_at DESC").
		Limit(6).
		Find(&recentComments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"student": fiber.Map{
			"id":         student.ID,
			"name":       student.DisplayName(),
			"student_id": student.UserStudentID,
			"department": student.Department,
			"year":       student.Year,
			"is_active":  student.IsActive,
		},
		"overall_average":       service.AverageOfPercentages(marks),
		"total_records":         len(marks),
		"subject_averages":      service.SubjectAverages(marks),
		"total_certificates":    totalCerts,
		"verified_certificates": verifiedCerts,
		"recent_posts":          recentPosts,
		"recent_comments":       recentComments,
	})
}

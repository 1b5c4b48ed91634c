package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// GenerateStudentID membuat nomor induk berurutan dengan format CT<tahun>ST####.
// Urutan diambil dari nomor terbesar yang sudah ada untuk tahun berjalan.
func GenerateStudentID(db *gorm.DB) (string, error) {
	return GenerateStudentIDAt(db, time.Now())
}

func GenerateStudentIDAt(db *gorm.DB, now time.Time) (string, error) {
	prefix := fmt.Sprintf("CT%dST", now.Year())

	var last string
	err := db.Table("users").
		Select("user_student_id").
		Where("user_student_id LIKE ?", prefix+"%").
		Order("user_student_id DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	if last == "" {
		return prefix + "0001", nil
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
	if err != nil {
		return "", fmt.Errorf("nomor induk tidak valid: %q", last)
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}

package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"campustrack_backend/internals/features/users/auth/repository"
)

// StartTokenCleanupScheduler membersihkan token blacklist & refresh token kadaluarsa secara berkala
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		// Interval dari env dalam jam (default: 24 jam)
		intervalHours := 24
		if val := os.Getenv("TOKEN_CLEANUP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token kadaluarsa...")

			if n, err := repository.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token blacklist: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token blacklist kadaluarsa dihapus", n)
			}

			if n, err := repository.CleanupExpiredRefreshTokens(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d refresh token kadaluarsa dihapus", n)
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}

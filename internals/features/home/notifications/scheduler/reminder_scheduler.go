package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"campustrack_backend/internals/features/home/notifications/service"
)

// StartEventReminderScheduler menjalankan loop reminder event:
// "starting soon" dan "registration" dicek tiap interval.
func StartEventReminderScheduler(db *gorm.DB) {
	go func() {
		intervalMinutes := envInt("EVENT_REMINDER_INTERVAL_MINUTES", 30)
		windowHours := envInt("EVENT_REMINDER_WINDOW_HOURS", 24)

		interval := time.Duration(intervalMinutes) * time.Minute
		window := time.Duration(windowHours) * time.Hour

		for {
			log.Println("[REMINDER] Menjalankan pengiriman reminder event...")

			if n, err := service.DispatchEventReminders(db, window, service.ReminderStartingSoon); err != nil {
				log.Printf("[REMINDER ERROR] starting_soon: %v", err)
			} else if n > 0 {
				log.Printf("[REMINDER] %d notifikasi starting_soon dibuat", n)
			}

			if n, err := service.DispatchEventReminders(db, window, service.ReminderRegistration); err != nil {
				log.Printf("[REMINDER ERROR] registration: %v", err)
			} else if n > 0 {
				log.Printf("[REMINDER] %d notifikasi registration dibuat", n)
			}

			time.Sleep(interval)
		}
	}()
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

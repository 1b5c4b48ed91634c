// internals/features/home/notifications/service/notification_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	notifModel "campustrack_backend/internals/features/home/notifications/model"
)

// NotifyUser membuat satu notifikasi in-app untuk user tertentu.
// Gagal insert hanya dicatat di log, tidak menggagalkan operasi pemanggil.
func NotifyUser(db *gorm.DB, userID uuid.UUID, content, notifType string, tags ...string) {
	n := notifModel.NotificationModel{
		NotificationUserID:  userID,
		NotificationContent: content,
		NotificationType:    notifType,
		NotificationTags:    pq.StringArray(tags),
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat notifikasi untuk user %s: %v", userID, err)
	}
}

// NotifyUsers membuat notifikasi identik untuk banyak user sekaligus (batch insert)
func NotifyUsers(db *gorm.DB, userIDs []uuid.UUID, content, notifType string, tags ...string) {
	if len(userIDs) == 0 {
		return
	}
	rows := make([]notifModel.NotificationModel, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, notifModel.NotificationModel{
			NotificationUserID:  id,
			NotificationContent: content,
			NotificationType:    notifType,
			NotificationTags:    pq.StringArray(tags),
		})
	}
	if err := db.CreateInBatches(&rows, 200).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat notifikasi batch (%d user): %v", len(userIDs), err)
	}
}

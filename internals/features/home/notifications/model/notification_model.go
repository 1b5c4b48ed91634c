package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Jenis notifikasi (di-handle sebagai konstanta di sisi kode)
const (
	NotificationTypeApproval    = "approval"
	NotificationTypeCertificate = "certificate"
	NotificationTypeEvent       = "event"
	NotificationTypeMark        = "mark"
	NotificationTypeSocial      = "social"
	NotificationTypeSystem      = "system"
)

type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID    uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationContent   string         `gorm:"column:notification_content;type:text;not null" json:"notification_content"`
	NotificationType      string         `gorm:"column:notification_type;type:varchar(20);not null;default:'system'" json:"notification_type"`
	NotificationTags      pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationIsRead    bool           `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

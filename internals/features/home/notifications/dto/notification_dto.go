package dto

import (
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/home/notifications/model"
)

type NotificationResponse struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Content        string    `json:"content"`
	Type           string    `json:"type"`
	Tags           []string  `json:"tags"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToNotificationResponse(n *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Content:        n.NotificationContent,
		Type:           n.NotificationType,
		Tags:           n.NotificationTags,
		IsRead:         n.NotificationIsRead,
		CreatedAt:      n.NotificationCreatedAt,
	}
}

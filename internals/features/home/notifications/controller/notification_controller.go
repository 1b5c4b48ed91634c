package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/features/home/notifications/dto"
	"campustrack_backend/internals/features/home/notifications/model"
	helper "campustrack_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ====================== LIST ======================
// GET /api/u/notifications — milik sendiri, terbaru dulu
func (nc *NotificationController) ListNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := nc.DB.Model(&model.NotificationModel{}).Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var notifications []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.ToNotificationResponse(&notifications[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPagination(paging, total))
}

// ====================== POLL UNREAD ======================
// GET /api/u/notifications/poll?last_id=<uuid> — notifikasi baru setelah last_id
// plus jumlah unread, untuk badge polling di frontend
func (nc *NotificationController) PollUnread(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	q := nc.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID)

	if lastParam := c.Query("last_id"); lastParam != "" {
		lastID, err := uuid.Parse(lastParam)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "last_id tidak valid")
		}
		var last model.NotificationModel
		if err := nc.DB.First(&last, "notification_id = ?", lastID).Error; err == nil {
			q = q.Where("notification_created_at > ?", last.NotificationCreatedAt)
		}
		// last_id tak dikenal: anggap poll pertama, kirim semua unread
	}

	var notifications []model.NotificationModel
	if err := q.Order("notification_created_at ASC").Limit(50).Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	var unreadCount int64
	nc.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Count(&unreadCount)

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.ToNotificationResponse(&notifications[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"notifications": out,
		"unread_count":  unreadCount,
	})
}

// ====================== MARK READ ======================
// PATCH /api/u/notifications/:id/read
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := nc.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai terbaca", nil)
}

// PATCH /api/u/notifications/read-all
func (nc *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := nc.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	return helper.JsonUpdated(c, "Semua notifikasi ditandai terbaca", fiber.Map{
		"updated": res.RowsAffected,
	})
}

// ====================== CLEAR READ ======================
// DELETE /api/u/notifications/read — hapus semua yang sudah terbaca
func (nc *NotificationController) ClearRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := nc.DB.
		Where("notification_user_id = ? AND notification_is_read = TRUE", userID).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus notifikasi")
	}
	return helper.JsonDeleted(c, "Notifikasi terbaca dihapus", fiber.Map{
		"deleted": res.RowsAffected,
	})
}

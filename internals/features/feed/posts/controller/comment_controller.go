package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/feed/posts/dto"
	"campustrack_backend/internals/features/feed/posts/model"
	"campustrack_backend/internals/features/feed/posts/service"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	helper "campustrack_backend/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// ====================== LIST ======================
// GET /api/u/posts/:id/comments — urut paling lama dulu
func (cc *CommentController) ListComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var comments []model.CommentModel
	if err := cc.DB.Preload("User").
		Where("comment_post_id = ?", postID).
		Order("comment_created_at ASC").
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, dto.ToCommentResponse(&comments[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// ====================== CREATE ======================
// POST /api/u/posts/:id/comments
func (cc *CommentController) CreateComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi komentar wajib diisi")
	}

	comment, created, err := service.CreateComment(cc.DB, postID, userID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}

	// Notifikasi hanya untuk komentar yang benar-benar baru
	if created {
		var post model.PostModel
		if err := cc.DB.First(&post, "post_id = ?", postID).Error; err == nil && post.PostUserID != userID {
			commenterName, _ := findUserName(cc.DB, userID)
			notifService.NotifyUser(cc.DB, post.PostUserID,
				fmt.Sprintf("%s mengomentari post Anda: %q", commenterName, previewOf(post.PostContent)),
				notifModel.NotificationTypeSocial, "post", "comment")
		}
	}

	if created {
		return helper.JsonCreated(c, "Komentar berhasil dibuat", dto.ToCommentResponse(comment))
	}
	// duplikat dalam 30 detik: diterima diam-diam, komentar lama dikembalikan
	return helper.JsonOK(c, "OK", dto.ToCommentResponse(comment))
}

// ====================== UPDATE ======================
// Hanya author komentar
func (cc *CommentController) UpdateComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var comment model.CommentModel
	if err := cc.DB.First(&comment, "comment_id = ?", commentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
	}
	if comment.CommentUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya author yang boleh mengubah komentar")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	content := service.NormalizeCommentContent(req.Content)
	if content == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi komentar wajib diisi")
	}

	if err := cc.DB.Model(&comment).Update("comment_content", content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update komentar")
	}
	comment.CommentContent = content

	return helper.JsonUpdated(c, "Komentar berhasil diperbarui", dto.ToCommentResponse(&comment))
}

// ====================== DELETE ======================
// Author komentar, author post, atau admin
func (cc *CommentController) DeleteComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var comment model.CommentModel
	if err := cc.DB.First(&comment, "comment_id = ?", commentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
	}

	allowed := comment.CommentUserID == userID || helper.GetUserRole(c) == constants.RoleAdmin
	if !allowed {
		var post model.PostModel
		if err := cc.DB.First(&post, "post_id = ?", comment.CommentPostID).Error; err == nil {
			allowed = post.PostUserID == userID
		}
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh menghapus komentar ini")
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}
	return helper.JsonDeleted(c, "Komentar berhasil dihapus", nil)
}

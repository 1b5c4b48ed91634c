package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/feed/posts/dto"
	"campustrack_backend/internals/features/feed/posts/model"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	helper "campustrack_backend/internals/helpers"
)

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// previewOf memotong isi post untuk notifikasi (maksimal 30 karakter)
func previewOf(content string) string {
	runes := []rune(content)
	if len(runes) <= 30 {
		return content
	}
	return string(runes[:30])
}

// ====================== CREATE ======================
// POST /api/u/posts — opsional dengan gambar (multipart "image")
func (pc *PostController) CreatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	content := strings.TrimSpace(c.FormValue("content"))
	if content == "" {
		// fallback JSON body
		var req dto.CreatePostRequest
		if err := c.BodyParser(&req); err == nil {
			content = strings.TrimSpace(req.Content)
		}
	}
	if content == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi post wajib diisi")
	}

	post := model.PostModel{
		PostContent: content,
		PostUserID:  userID,
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		url, err := helper.UploadImageToSupabase("posts", fileHeader)
		if err != nil {
			log.Printf("[ERROR] Upload gambar post gagal: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		post.PostImageURL = &url
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat post")
	}

	return helper.JsonCreated(c, "Post berhasil dibuat", dto.ToPostResponse(&post, 0, 0, false))
}

// ====================== LIST (FEED) ======================
// GET /api/u/posts — feed global terbaru dulu
func (pc *PostController) ListPosts(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 10, 50)

	q := pc.DB.Model(&model.PostModel{})
	if authorParam := c.Query("author_id"); authorParam != "" {
		authorID, err := uuid.Parse(authorParam)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "author_id tidak valid")
		}
		q = q.Where("post_user_id = ?", authorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung post")
	}

	var posts []model.PostModel
	if err := q.Preload("User").
		Order("post_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feed")
	}

	out := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		likeCount, commentCount, likedByMe := pc.postCounters(posts[i].PostID, viewerID)
		out = append(out, dto.ToPostResponse(&posts[i], likeCount, commentCount, likedByMe))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPagination(paging, total))
}

func (pc *PostController) postCounters(postID, viewerID uuid.UUID) (likeCount, commentCount int64, likedByMe bool) {
	pc.DB.Model(&model.PostLikeModel{}).Where("post_like_post_id = ?", postID).Count(&likeCount)
	pc.DB.Model(&model.CommentModel{}).Where("comment_post_id = ?", postID).Count(&commentCount)
	var mine int64
	pc.DB.Model(&model.PostLikeModel{}).
		Where("post_like_post_id = ? AND post_like_user_id = ?", postID, viewerID).
		Count(&mine)
	return likeCount, commentCount, mine > 0
}

// ====================== DETAIL ======================
func (pc *PostController) GetPost(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var post model.PostModel
	if err := pc.DB.Preload("User").First(&post, "post_id = ?", postID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}

	likeCount, commentCount, likedByMe := pc.postCounters(post.PostID, viewerID)
	return helper.JsonOK(c, "OK", dto.ToPostResponse(&post, likeCount, commentCount, likedByMe))
}

// ====================== UPDATE ======================
// Hanya author atau admin
func (pc *PostController) UpdatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var post model.PostModel
	if err := pc.DB.First(&post, "post_id = ?", postID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}
	if post.PostUserID != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya author yang boleh mengubah post ini")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi post wajib diisi")
	}

	if err := pc.DB.Model(&post).Update("post_content", req.Content).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update post")
	}
	post.PostContent = req.Content

	return helper.JsonUpdated(c, "Post berhasil diperbarui", dto.ToPostResponse(&post, 0, 0, false))
}

// ====================== DELETE ======================
// Hanya author atau admin; like & komentar ikut terhapus
func (pc *PostController) DeletePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var post model.PostModel
	if err := pc.DB.First(&post, "post_id = ?", postID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}
	if post.PostUserID != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya author yang boleh menghapus post ini")
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_like_post_id = ?", postID).Delete(&model.PostLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_post_id = ?", postID).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus post")
	}

	return helper.JsonDeleted(c, "Post berhasil dihapus", nil)
}

// ====================== LIKE ======================
// POST /api/u/posts/:id/like — toggle: like kalau belum, batal like kalau sudah
func (pc *PostController) ToggleLike(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var post model.PostModel
	if err := pc.DB.Preload("User").First(&post, "post_id = ?", postID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}

	var existing model.PostLikeModel
	err = pc.DB.Where("post_like_post_id = ? AND post_like_user_id = ?", postID, userID).
		First(&existing).Error

	liked := false
	switch {
	case err == nil:
		// sudah like → batalkan
		if err := pc.DB.Delete(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan like")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := model.PostLikeModel{PostLikePostID: postID, PostLikeUserID: userID}
		if err := pc.DB.Create(&like).Error; err != nil {
			// race dengan request kembar: unique index yang menang, anggap sudah like
			if !strings.Contains(strings.ToLower(err.Error()), "unique") {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan like")
			}
		}
		liked = true

		// Kabari author (kecuali like post sendiri)
		if post.PostUserID != userID {
			likerName := ""
			if u, err := findUserName(pc.DB, userID); err == nil {
				likerName = u
			}
			notifService.NotifyUser(pc.DB, post.PostUserID,
				fmt.Sprintf("%s menyukai post Anda: %q", likerName, previewOf(post.PostContent)),
				notifModel.NotificationTypeSocial, "post", "like")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa like")
	}

	var likeCount int64
	pc.DB.Model(&model.PostLikeModel{}).Where("post_like_post_id = ?", postID).Count(&likeCount)

	return helper.JsonOK(c, "OK", fiber.Map{
		"post_id":    postID,
		"liked":      liked,
		"like_count": likeCount,
	})
}

func findUserName(db *gorm.DB, userID uuid.UUID) (string, error) {
	var name string
	err := db.Raw(`SELECT COALESCE(NULLIF(full_name, ''), user_name) FROM users WHERE id = ?`, userID).
		Scan(&name).Error
	return name, err
}

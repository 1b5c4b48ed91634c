package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/home/news/dto"
	"campustrack_backend/internals/features/home/news/model"
	helper "campustrack_backend/internals/helpers"
)

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

// ====================== CREATE ======================
// POST /api/u/news — semua user login; author_role di-snapshot dari role saat ini
func (nc *NewsController) CreateNews(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	content := strings.TrimSpace(c.FormValue("content"))
	if title == "" || content == "" {
		var req dto.CreateNewsRequest
		if err := c.BodyParser(&req); err == nil {
			if title == "" {
				title = strings.TrimSpace(req.Title)
			}
			if content == "" {
				content = strings.TrimSpace(req.Content)
			}
		}
	}
	if title == "" || content == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title dan content wajib diisi")
	}

	news := model.NewsModel{
		NewsTitle:      title,
		NewsContent:    content,
		NewsAuthorID:   userID,
		NewsAuthorRole: helper.GetUserRole(c),
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		url, err := helper.UploadImageToSupabase("news", fileHeader)
		if err != nil {
			log.Printf("[ERROR] Upload gambar news gagal: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		news.NewsImageURL = &url
	}

	if err := nc.DB.Create(&news).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat berita")
	}

	return helper.JsonCreated(c, "Berita berhasil dibuat", dto.ToNewsResponse(&news))
}

// ====================== LIST (PUBLIC) ======================
// GET /api/public/news — terbaru dulu, bisa diakses tanpa login
func (nc *NewsController) ListNews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := nc.DB.Model(&model.NewsModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung berita")
	}

	var news []model.NewsModel
	if err := nc.DB.Preload("Author").
		Order("news_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&news).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}

	out := make([]dto.NewsResponse, 0, len(news))
	for i := range news {
		out = append(out, dto.ToNewsResponse(&news[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPagination(paging, total))
}

// GET /api/public/news/:id
func (nc *NewsController) GetNews(c *fiber.Ctx) error {
	newsID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var news model.NewsModel
	if err := nc.DB.Preload("Author").First(&news, "news_id = ?", newsID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.ToNewsResponse(&news))
}

// ====================== UPDATE ======================
// Hanya author atau admin
func (nc *NewsController) UpdateNews(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	newsID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var news model.NewsModel
	if err := nc.DB.First(&news, "news_id = ?", newsID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
	}
	if news.NewsAuthorID != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya author yang boleh mengubah berita")
	}

	var req dto.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		updates["news_title"] = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) != "" {
		updates["news_content"] = strings.TrimSpace(*req.Content)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	if err := nc.DB.Model(&news).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update berita")
	}
	if err := nc.DB.First(&news, "news_id = ?", newsID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca ulang berita")
	}

	return helper.JsonUpdated(c, "Berita berhasil diperbarui", dto.ToNewsResponse(&news))
}

// ====================== DELETE ======================
func (nc *NewsController) DeleteNews(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	newsID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var news model.NewsModel
	if err := nc.DB.First(&news, "news_id = ?", newsID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
	}
	if news.NewsAuthorID != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya author yang boleh menghapus berita")
	}

	if err := nc.DB.Delete(&news).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus berita")
	}
	return helper.JsonDeleted(c, "Berita berhasil dihapus", nil)
}

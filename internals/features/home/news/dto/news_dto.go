package dto

import (
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/home/news/model"
)

type CreateNewsRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required"`
}

type UpdateNewsRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NewsResponse struct {
	NewsID     uuid.UUID `json:"news_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageURL   *string   `json:"image_url,omitempty"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	AuthorRole string    `json:"author_role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToNewsResponse(n *model.NewsModel) NewsResponse {
	resp := NewsResponse{
		NewsID:     n.NewsID,
		Title:      n.NewsTitle,
		Content:    n.NewsContent,
		ImageURL:   n.NewsImageURL,
		AuthorID:   n.NewsAuthorID,
		AuthorRole: n.NewsAuthorRole,
		CreatedAt:  n.NewsCreatedAt,
		UpdatedAt:  n.NewsUpdatedAt,
	}
	if n.Author != nil {
		resp.AuthorName = n.Author.DisplayName()
	}
	return resp
}

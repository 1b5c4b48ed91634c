package dto

import (
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/feed/posts/model"
)

// ====================== REQUEST ======================

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// ====================== RESPONSE ======================

type PostAuthor struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type PostResponse struct {
	PostID       uuid.UUID  `json:"post_id"`
	Content      string     `json:"content"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Author       PostAuthor `json:"author"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	LikedByMe    bool       `json:"liked_by_me"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CommentResponse struct {
	CommentID uuid.UUID  `json:"comment_id"`
	PostID    uuid.UUID  `json:"post_id"`
	Content   string     `json:"content"`
	Author    PostAuthor `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toAuthor(p *model.PostModel) PostAuthor {
	a := PostAuthor{ID: p.PostUserID}
	if p.User != nil {
		a.UserName = p.User.UserName
		a.FullName = p.User.FullName
		a.Role = p.User.Role
	}
	return a
}

func ToPostResponse(p *model.PostModel, likeCount, commentCount int64, likedByMe bool) PostResponse {
	return PostResponse{
		PostID:       p.PostID,
		Content:      p.PostContent,
		ImageURL:     p.PostImageURL,
		Author:       toAuthor(p),
		LikeCount:    likeCount,
		CommentCount: commentCount,
		LikedByMe:    likedByMe,
		CreatedAt:    p.PostCreatedAt,
		UpdatedAt:    p.PostUpdatedAt,
	}
}

func ToCommentResponse(cm *model.CommentModel) CommentResponse {
	resp := CommentResponse{
		CommentID: cm.CommentID,
		PostID:    cm.CommentPostID,
		Content:   cm.CommentContent,
		Author:    PostAuthor{ID: cm.CommentUserID},
		CreatedAt: cm.CommentCreatedAt,
		UpdatedAt: cm.CommentUpdatedAt,
	}
	if cm.User != nil {
		resp.Author.UserName = cm.User.UserName
		resp.Author.FullName = cm.User.FullName
		resp.Author.Role = cm.User.Role
	}
	return resp
}

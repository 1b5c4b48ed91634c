package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "campustrack_backend/internals/features/users/user/model"
)

// Satu user maksimal satu like per post (unique index gabungan)
type PostLikeModel struct {
	PostLikeID        uuid.UUID `gorm:"column:post_like_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"post_like_id"`
	PostLikePostID    uuid.UUID `gorm:"column:post_like_post_id;type:uuid;not null;uniqueIndex:idx_post_like_once" json:"post_like_post_id"`
	PostLikeUserID    uuid.UUID `gorm:"column:post_like_user_id;type:uuid;not null;uniqueIndex:idx_post_like_once" json:"post_like_user_id"`
	PostLikeCreatedAt time.Time `gorm:"column:post_like_created_at;autoCreateTime" json:"post_like_created_at"`

	// Relations
	User *UserModel.UserModel `gorm:"foreignKey:PostLikeUserID" json:"user,omitempty"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}

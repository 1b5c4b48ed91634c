package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "campustrack_backend/internals/features/users/user/model"
)

type PostModel struct {
	PostID       uuid.UUID `gorm:"column:post_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"post_id"`
	PostContent  string    `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostImageURL *string   `gorm:"column:post_image_url;type:text" json:"post_image_url"`
	PostUserID   uuid.UUID `gorm:"column:post_user_id;type:uuid;not null;index" json:"post_user_id"`

	PostCreatedAt time.Time `gorm:"column:post_created_at;autoCreateTime;index" json:"post_created_at"`
	PostUpdatedAt time.Time `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`

	// Relations
	User     *UserModel.UserModel `gorm:"foreignKey:PostUserID" json:"user,omitempty"`
	Likes    []PostLikeModel      `gorm:"foreignKey:PostLikePostID" json:"likes,omitempty"`
	Comments []CommentModel       `gorm:"foreignKey:CommentPostID" json:"comments,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

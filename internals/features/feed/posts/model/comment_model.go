package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "campustrack_backend/internals/features/users/user/model"
)

type CommentModel struct {
	CommentID      uuid.UUID `gorm:"column:comment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"comment_id"`
	CommentPostID  uuid.UUID `gorm:"column:comment_post_id;type:uuid;not null;index" json:"comment_post_id"`
	CommentUserID  uuid.UUID `gorm:"column:comment_user_id;type:uuid;not null" json:"comment_user_id"`
	CommentContent string    `gorm:"column:comment_content;type:text;not null" json:"comment_content"`

	CommentCreatedAt time.Time `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
	CommentUpdatedAt time.Time `gorm:"column:comment_updated_at;autoUpdateTime" json:"comment_updated_at"`

	// Relations
	User *UserModel.UserModel `gorm:"foreignKey:CommentUserID" json:"user,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "campustrack_backend/internals/features/users/user/model"
)

type NewsModel struct {
	NewsID       uuid.UUID `gorm:"column:news_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"news_id"`
	NewsTitle    string    `gorm:"column:news_title;type:varchar(255);not null" json:"news_title"`
	NewsContent  string    `gorm:"column:news_content;type:text;not null" json:"news_content"`
	NewsImageURL *string   `gorm:"column:news_image_url;type:text" json:"news_image_url,omitempty"`

	NewsAuthorID uuid.UUID `gorm:"column:news_author_id;type:uuid;not null" json:"news_author_id"`
	// Role author di-snapshot saat publish, bukan di-join saat baca
	NewsAuthorRole string `gorm:"column:news_author_role;type:varchar(20);not null" json:"news_author_role"`

	NewsCreatedAt time.Time `gorm:"column:news_created_at;autoCreateTime;index" json:"news_created_at"`
	NewsUpdatedAt time.Time `gorm:"column:news_updated_at;autoUpdateTime" json:"news_updated_at"`

	// Relations
	Author *UserModel.UserModel `gorm:"foreignKey:NewsAuthorID" json:"author,omitempty"`
}

func (NewsModel) TableName() string {
	return "news"
}

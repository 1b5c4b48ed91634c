// internals/features/feed/posts/service/comment_service.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campustrack_backend/internals/features/feed/posts/model"
)

// Jendela waktu dobel-submit komentar yang dianggap duplikat
const commentDedupWindow = 30 * time.Second

// NormalizeCommentContent meratakan whitespace supaya perbandingan duplikat konsisten
func NormalizeCommentContent(content string) string {
	return strings.Join(strings.Fields(content), " ")
}

// CreateComment menyimpan komentar baru dengan guard anti dobel-submit.
// Komentar dari author yang sama, di post yang sama, dengan isi yang sama
// (setelah normalisasi whitespace, case-insensitive) dalam 30 detik terakhir
// dianggap duplikat dan dibuang diam-diam; komentar lama yang dikembalikan.
//
// Pengecekan dijalankan dalam transaksi dengan row lock di post induk,
// supaya dua request paralel tidak sama-sama lolos pengecekan.
func CreateComment(db *gorm.DB, postID, userID uuid.UUID, content string) (*model.CommentModel, bool, error) {
	normalized := NormalizeCommentContent(content)

	var result model.CommentModel
	created := false

	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock post induk: serialisasi semua insert komentar untuk post ini
		var post model.PostModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "post_id = ?", postID).Error; err != nil {
			return err
		}

		var recent model.CommentModel
		err := tx.
			Where("comment_post_id = ? AND comment_user_id = ? AND comment_created_at > ?",
				postID, userID, time.Now().Add(-commentDedupWindow)).
			Order("comment_created_at DESC").
			First(&recent).Error
		if err == nil && strings.EqualFold(NormalizeCommentContent(recent.CommentContent), normalized) {
			result = recent
			return nil
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		comment := model.CommentModel{
			CommentPostID:  postID,
			CommentUserID:  userID,
			CommentContent: normalized,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		result = comment
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &result, created, nil
}

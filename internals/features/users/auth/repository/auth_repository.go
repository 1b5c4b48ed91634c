// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "campustrack_backend/internals/features/users/auth/model"
	userModel "campustrack_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	ident := strings.ToLower(strings.TrimSpace(identifier))
	if err := db.Where("LOWER(email) = ? OR LOWER(user_name) = ?", ident, ident).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, newPassword string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", userID).Update("password", newPassword).Error
}

/* ====================== REFRESH TOKEN ====================== */

// hashToken: refresh token disimpan sebagai hash, bukan plaintext
func hashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

func CreateRefreshToken(db *gorm.DB, userID uuid.UUID, token string, expiresAt time.Time, userAgent, ip string) error {
	return db.Create(&authModel.RefreshTokenModel{
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: expiresAt.UTC(),
		UserAgent: &userAgent,
		IP:        &ip,
	}).Error
}

func FindRefreshToken(db *gorm.DB, token string) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hashToken(token), time.Now().UTC()).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshToken(db *gorm.DB, token string) error {
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", hashToken(token)).
		Update("revoked_at", time.Now().UTC()).Error
}

func RevokeAllRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now().UTC()).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	// Kolom di DB: expired_at (bukan expires_at)
	res := db.Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}

func CleanupExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM refresh_tokens WHERE expires_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}

/* ====================== AVAILABILITY CHECK ====================== */

// IsUsernameTaken — cek apakah username sudah dipakai
func IsUsernameTaken(db *gorm.DB, username string) (bool, error) {
	if username == "" {
		return false, errors.New("username cannot be empty")
	}

	var exists bool
	err := db.
		Raw(`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(user_name) = LOWER(?))`, username).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

// IsEmailTaken — cek apakah email sudah terdaftar
func IsEmailTaken(db *gorm.DB, email string) (bool, error) {
	if email == "" {
		return false, errors.New("email cannot be empty")
	}

	var exists bool
	err := db.
		Raw(`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER(?))`, email).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

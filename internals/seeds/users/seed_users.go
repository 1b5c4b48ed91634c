package users

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"campustrack_backend/internals/features/users/user/model"

	authHelper "campustrack_backend/internals/features/users/auth/helper"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserSeed struct {
	UserName         string `json:"user_name"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}

// SeedUsersFromJSON membuat akun dari file JSON (dipakai untuk admin awal,
// karena register publik tidak menerima role admin).
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password & security answer sebelum disimpan
		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}
		hashedAnswer, err := authHelper.HashPassword(strings.ToLower(strings.TrimSpace(data.SecurityAnswer)))
		if err != nil {
			log.Printf("❌ Gagal hash security answer untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			ID:               uuid.New(),
			UserName:         data.UserName,
			FullName:         data.FullName,
			Email:            data.Email,
			Password:         hashedPassword,
			Role:             data.Role,
			SecurityQuestion: data.SecurityQuestion,
			SecurityAnswer:   hashedAnswer,
			IsActive:         true,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s' (role: %s)", data.Email, data.Role)
		}
	}
}

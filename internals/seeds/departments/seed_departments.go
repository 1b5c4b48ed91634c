package departments

import (
	"encoding/json"
	"log"
	"os"

	"campustrack_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentSeed struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func SeedDepartmentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file department:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []DepartmentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.DepartmentModel
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Department '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		dep := model.DepartmentModel{
			ID:   uuid.New(),
			Name: data.Name,
			Code: data.Code,
		}
		if err := db.Create(&dep).Error; err != nil {
			log.Printf("❌ Gagal insert department '%s': %v", data.Name, err)
		} else {
			log.Printf("✅ Berhasil insert department '%s'", data.Name)
		}
	}
}

package seeds

import (
	"log"

	"campustrack_backend/internals/seeds/departments"
	"campustrack_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal (admin + daftar jurusan).
// Dipanggil dari main.go saat RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🚀 Menjalankan seeding awal...")

	departments.SeedDepartmentsFromJSON(db, "internals/seeds/departments/data_departments.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	log.Println("✅ Seeding selesai.")
}

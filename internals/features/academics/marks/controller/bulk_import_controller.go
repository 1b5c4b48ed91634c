package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/academics/marks/dto"
	"campustrack_backend/internals/features/academics/marks/model"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
)

// Header wajib di baris pertama spreadsheet import
var bulkImportHeader = []string{"Student ID", "Subject", "Marks"}

type BulkMarkController struct {
	DB *gorm.DB
}

func NewBulkMarkController(db *gorm.DB) *BulkMarkController {
	return &BulkMarkController{DB: db}
}

// ====================== TEMPLATE ======================
// GET /api/t/marks/bulk/template — unduh template xlsx kosong
func (bc *BulkMarkController) DownloadTemplate(c *fiber.Ctx) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Marks"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range bulkImportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	fileName := fmt.Sprintf("marks_template_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+fileName)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis template")
	}
	return c.Send(buf.Bytes())
}

// ====================== IMPORT ======================
// POST /api/t/marks/bulk — upload xlsx berisi Student ID | Subject | Marks.
// Student dicocokkan via student ID kampus, username, atau email.
// Total dianggap 100 untuk semua baris import.
func (bc *BulkMarkController) ImportMarks(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File spreadsheet wajib diunggah")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File bukan spreadsheet xlsx yang valid")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Spreadsheet kosong")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca isi spreadsheet")
	}

	if !headerMatches(rows[0]) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Header harus: "+strings.Join(bulkImportHeader, " | "))
	}

	result := dto.BulkImportResult{Errors: []dto.BulkImportRowError{}}
	isAdmin := helper.GetUserRole(c) == constants.RoleAdmin

	var teacher userModel.UserModel
	if !isAdmin {
		if err := bc.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
	}

	for i, row := range rows[1:] {
		rowNum := i + 2 // nomor baris di spreadsheet (1-based, setelah header)

		if isBlankRow(row) {
			continue
		}
		if len(row) < 3 {
			result.Skipped++
			result.Errors = append(result.Errors, dto.BulkImportRowError{Row: rowNum, Reason: "kolom kurang"})
			continue
		}

		identifier := strings.TrimSpace(row[0])
		subject := strings.TrimSpace(row[1])
		obtained, convErr := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if identifier == "" || subject == "" {
			result.Skipped++
			result.Errors = append(result.Errors, dto.BulkImportRowError{Row: rowNum, Reason: "Student ID / Subject kosong"})
			continue
		}
		if convErr != nil || obtained < 0 || obtained > 100 {
			result.Skipped++
			result.Errors = append(result.Errors, dto.BulkImportRowError{Row: rowNum, Reason: "Marks harus angka 0-100"})
			continue
		}

		student, findErr := bc.findStudent(identifier)
		if findErr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.BulkImportRowError{Row: rowNum, Reason: "student tidak ditemukan"})
			continue
		}
		if !isAdmin && teacher.Department != nil && student.Department != nil &&
			*teacher.Department != *student.Department {
			result.Skipped++
			result.Errors = append(result.Errors, dto.BulkImportRowError{Row: rowNum, Reason: "student di department lain"})
			continue
		}

		mark := model.MarkModel{
			MarkStudentID: student.ID,
			MarkTeacherID: teacherID,
			MarkSubject:   subject,
			MarkObtained:  obtained,
			MarkTotal:     100,
		}
		if err := bc.DB.Create(&mark).Error; err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.BulkImportRowError{Row: rowNum, Reason: "gagal menyimpan"})
			continue
		}
		result.Imported++

		notifService.NotifyUser(bc.DB, student.ID,
			fmt.Sprintf("Nilai %s Anda sudah masuk: %.0f/100", subject, obtained),
			notifModel.NotificationTypeMark, "mark", "bulk")
	}

	return helper.JsonOK(c, "Import selesai", result)
}

// ====================== AVAILABILITY ======================
// POST /api/t/marks/bulk/availability — cek keberadaan student per baris
// sebelum import betulan. Kolom pertama tiap baris dibaca sebagai identifier.
func (bc *BulkMarkController) CheckStudentAvailability(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File spreadsheet wajib diunggah")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File bukan spreadsheet xlsx yang valid")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Spreadsheet kosong")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca isi spreadsheet")
	}

	results := make([]dto.StudentAvailabilityRow, 0)
	for i, row := range rows {
		if i == 0 || isBlankRow(row) { // baris pertama = header
			continue
		}
		identifier := ""
		if len(row) > 0 {
			identifier = strings.TrimSpace(row[0])
		}
		entry := dto.StudentAvailabilityRow{Row: i + 1, StudentID: identifier}
		if identifier != "" {
			if student, findErr := bc.findStudent(identifier); findErr == nil {
				entry.Exists = true
				entry.Name = student.DisplayName()
			}
		}
		results = append(results, entry)
	}

	return helper.JsonOK(c, "OK", results)
}

func headerMatches(row []string) bool {
	if len(row) < len(bulkImportHeader) {
		return false
	}
	for i, want := range bulkImportHeader {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return false
		}
	}
	return true
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// findStudent mencocokkan via student ID kampus dulu, lalu username/email
func (bc *BulkMarkController) findStudent(identifier string) (*userModel.UserModel, error) {
	var student userModel.UserModel
	err := bc.DB.
		Where("role = ? AND is_active = TRUE", constants.RoleStudent).
		Where("user_student_id = ? OR LOWER(user_name) = LOWER(?) OR LOWER(email) = LOWER(?)",
			identifier, identifier, identifier).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

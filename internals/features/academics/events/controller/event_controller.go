package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	"campustrack_backend/internals/features/academics/events/dto"
	"campustrack_backend/internals/features/academics/events/model"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	notifService "campustrack_backend/internals/features/home/notifications/service"
	userModel "campustrack_backend/internals/features/users/user/model"
	helper "campustrack_backend/internals/helpers"
	"campustrack_backend/internals/mailer"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// recipientsFor: scope college = semua student aktif, department = yang cocok saja
func (ec *EventController) recipientsFor(event *model.EventModel) ([]userModel.UserModel, error) {
	q := ec.DB.Where("role = ? AND is_active = TRUE", constants.RoleStudent)
	if event.EventScope == model.EventScopeDepartment && event.EventDepartment != nil {
		q = q.Where("department = ?", *event.EventDepartment)
	}
	var students []userModel.UserModel
	if err := q.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (ec *EventController) broadcast(event *model.EventModel, content, subject, body string) {
	students, err := ec.recipientsFor(event)
	if err != nil {
		return
	}
	ids := make([]uuid.UUID, 0, len(students))
	emails := make([]string, 0, len(students))
	for i := range students {
		ids = append(ids, students[i].ID)
		emails = append(emails, students[i].Email)
	}
	notifService.NotifyUsers(ec.DB, ids, content, notifModel.NotificationTypeEvent, "event")
	mailer.SendBestEffortMany(emails, subject, body)
}

// ====================== CREATE (TEACHER) ======================
// POST /api/t/events
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title wajib diisi")
	}

	dateFrom, err := time.Parse(time.RFC3339, req.DateFrom)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format RFC3339")
	}
	dateTo, err := time.Parse(time.RFC3339, req.DateTo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format RFC3339")
	}
	if dateTo.Before(dateFrom) {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_to tidak boleh sebelum date_from")
	}

	scope := req.Scope
	if scope == "" {
		scope = model.EventScopeCollege
	}
	if scope == model.EventScopeDepartment && (req.Department == nil || strings.TrimSpace(*req.Department) == "") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scope department wajib menyertakan department")
	}

	event := model.EventModel{
		EventTitle:            req.Title,
		EventDescription:      req.Description,
		EventVenue:            req.Venue,
		EventDateFrom:         dateFrom,
		EventDateTo:           dateTo,
		EventRegistrationLink: strings.TrimSpace(req.RegistrationLink),
		EventScope:            scope,
		EventDepartment:       req.Department,
		EventCreatedBy:        userID,
	}
	if err := ec.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat event")
	}

	ec.broadcast(&event,
		fmt.Sprintf("Event baru: %q pada %s.", event.EventTitle, event.EventDateFrom.Format("02 Jan 2006 15:04")),
		"Event baru: "+event.EventTitle,
		fmt.Sprintf("Event %q akan diadakan pada %s di %s.", event.EventTitle,
			event.EventDateFrom.Format("02 Jan 2006 15:04"), event.EventVenue))

	return helper.JsonCreated(c, "Event berhasil dibuat", dto.ToEventResponse(&event, time.Now()))
}

// ====================== LIST ======================
// GET /api/u/events — gabungan event scope college + department milik viewer
func (ec *EventController) ListEvents(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	q := ec.DB.Model(&model.EventModel{}).Preload("Creator")

	role := helper.GetUserRole(c)
	if role == constants.RoleStudent {
		var viewer userModel.UserModel
		if err := ec.DB.First(&viewer, "id = ?", userID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		if viewer.Department != nil {
			q = q.Where("event_scope = ? OR (event_scope = ? AND event_department = ?)",
				model.EventScopeCollege, model.EventScopeDepartment, *viewer.Department)
		} else {
			q = q.Where("event_scope = ?", model.EventScopeCollege)
		}
	}

	// filter status opsional: upcoming | ongoing | completed
	now := time.Now()
	switch c.Query("status") {
	case "upcoming":
		q = q.Where("event_date_from > ?", now)
	case "ongoing":
		q = q.Where("event_date_from <= ? AND event_date_to >= ?", now, now)
	case "completed":
		q = q.Where("event_date_to < ?", now)
	}

	var events []model.EventModel
	if err := q.Order("event_date_from ASC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.ToEventResponse(&events[i], now))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/u/events/:id
func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var event model.EventModel
	if err := ec.DB.Preload("Creator").First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.ToEventResponse(&event, time.Now()))
}

// GET /api/u/events/:id/register — redirect ke link pendaftaran selama masih dibuka
func (ec *EventController) RegisterRedirect(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	if !event.RegistrationOpen(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pendaftaran sudah ditutup")
	}
	return c.Redirect(event.EventRegistrationLink, fiber.StatusFound)
}

// ====================== UPDATE (TEACHER) ======================
// Hanya pembuat atau admin
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	if event.EventCreatedBy != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pembuat event yang boleh mengubah")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		updates["event_title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["event_description"] = *req.Description
	}
	if req.Venue != nil {
		updates["event_venue"] = *req.Venue
	}
	if req.DateFrom != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DateFrom)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format RFC3339")
		}
		updates["event_date_from"] = parsed
	}
	if req.DateTo != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DateTo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format RFC3339")
		}
		updates["event_date_to"] = parsed
	}
	if req.RegistrationLink != nil {
		updates["event_registration_link"] = strings.TrimSpace(*req.RegistrationLink)
	}
	if req.Scope != nil {
		if *req.Scope != model.EventScopeCollege && *req.Scope != model.EventScopeDepartment {
			return helper.JsonError(c, fiber.StatusBadRequest, "Scope harus college atau department")
		}
		updates["event_scope"] = *req.Scope
	}
	if req.Department != nil {
		updates["event_department"] = *req.Department
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	if err := ec.DB.Model(&event).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update event")
	}
	if err := ec.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca ulang event")
	}

	ec.broadcast(&event,
		fmt.Sprintf("Event %q diperbarui, cek detail terbaru.", event.EventTitle),
		"Event diperbarui: "+event.EventTitle,
		fmt.Sprintf("Detail event %q berubah. Jadwal terbaru: %s.", event.EventTitle,
			event.EventDateFrom.Format("02 Jan 2006 15:04")))

	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.ToEventResponse(&event, time.Now()))
}

// ====================== DELETE (TEACHER) ======================
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var event model.EventModel
	if err := ec.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	if event.EventCreatedBy != userID && helper.GetUserRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pembuat event yang boleh menghapus")
	}

	if err := ec.DB.Delete(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}

	ec.broadcast(&event,
		fmt.Sprintf("Event %q dibatalkan.", event.EventTitle),
		"Event dibatalkan: "+event.EventTitle,
		fmt.Sprintf("Event %q yang dijadwalkan %s telah dibatalkan.", event.EventTitle,
			event.EventDateFrom.Format("02 Jan 2006 15:04")))

	return helper.JsonDeleted(c, "Event berhasil dihapus", nil)
}

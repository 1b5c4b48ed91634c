package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "campustrack_backend/internals/features/users/user/model"
)

// Scope penerima event
const (
	EventScopeCollege    = "college"    // semua student aktif
	EventScopeDepartment = "department" // hanya student department tertentu
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventVenue       string    `gorm:"column:event_venue;type:varchar(255)" json:"event_venue"`

	EventDateFrom time.Time `gorm:"column:event_date_from;not null;index" json:"event_date_from"`
	EventDateTo   time.Time `gorm:"column:event_date_to;not null" json:"event_date_to"`

	EventRegistrationLink string `gorm:"column:event_registration_link;type:text;not null;default:''" json:"event_registration_link"`

	EventScope      string  `gorm:"column:event_scope;type:varchar(20);not null;default:'college'" json:"event_scope"`
	EventDepartment *string `gorm:"column:event_department;type:varchar(100)" json:"event_department,omitempty"`

	EventCreatedBy uuid.UUID `gorm:"column:event_created_by;type:uuid;not null" json:"event_created_by"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`

	// Relations
	Creator *UserModel.UserModel `gorm:"foreignKey:EventCreatedBy" json:"creator,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

// Status event diturunkan dari rentang tanggal, tidak disimpan di DB
func (e *EventModel) Status(now time.Time) string {
	switch {
	case now.Before(e.EventDateFrom):
		return "upcoming"
	case now.After(e.EventDateTo):
		return "completed"
	default:
		return "ongoing"
	}
}

// RegistrationOpen: link terisi dan event belum mulai
func (e *EventModel) RegistrationOpen(now time.Time) bool {
	return e.EventRegistrationLink != "" && now.Before(e.EventDateFrom)
}

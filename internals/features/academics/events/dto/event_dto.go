package dto

import (
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/features/academics/events/model"
)

// ====================== REQUEST ======================

type CreateEventRequest struct {
	Title            string  `json:"title" validate:"required,min=1,max=255"`
	Description      string  `json:"description"`
	Venue            string  `json:"venue"`
	DateFrom         string  `json:"date_from" validate:"required"` // RFC3339
	DateTo           string  `json:"date_to" validate:"required"`
	RegistrationLink string  `json:"registration_link"`
	Scope            string  `json:"scope" validate:"omitempty,oneof=college department"`
	Department       *string `json:"department"`
}

type UpdateEventRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Venue            *string `json:"venue"`
	DateFrom         *string `json:"date_from"`
	DateTo           *string `json:"date_to"`
	RegistrationLink *string `json:"registration_link"`
	Scope            *string `json:"scope"`
	Department       *string `json:"department"`
}

// ====================== RESPONSE ======================

type EventResponse struct {
	EventID          uuid.UUID `json:"event_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Venue            string    `json:"venue"`
	DateFrom         time.Time `json:"date_from"`
	DateTo           time.Time `json:"date_to"`
	RegistrationLink string    `json:"registration_link,omitempty"`
	RegistrationOpen bool      `json:"registration_open"`
	Status           string    `json:"status"`
	Scope            string    `json:"scope"`
	Department       *string   `json:"department,omitempty"`
	CreatorName      string    `json:"creator_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToEventResponse(e *model.EventModel, now time.Time) EventResponse {
	resp := EventResponse{
		EventID:          e.EventID,
		Title:            e.EventTitle,
		Description:      e.EventDescription,
		Venue:            e.EventVenue,
		DateFrom:         e.EventDateFrom,
		DateTo:           e.EventDateTo,
		RegistrationLink: e.EventRegistrationLink,
		RegistrationOpen: e.RegistrationOpen(now),
		Status:           e.Status(now),
		Scope:            e.EventScope,
		Department:       e.EventDepartment,
		CreatedAt:        e.EventCreatedAt,
	}
	if e.Creator != nil {
		resp.CreatorName = e.Creator.DisplayName()
	}
	return resp
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/events/model"
)

// ================== REQUEST ==================

type EventRequest struct {
	EventTitle        string  `json:"event_title" validate:"required,min=3,max=255"`
	EventDescription  string  `json:"event_description"`
	EventCategory     string  `json:"event_category" validate:"required,max=50"`
	EventLocation     string  `json:"event_location" validate:"max=255"`
	EventDate         string  `json:"event_date" validate:"required"` // ISO 8601
	EventStatus       string  `json:"event_status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	EventMaxAttendees *int    `json:"event_max_attendees" validate:"omitempty,gt=0"`
	EventPosterDataURL string `json:"event_poster_data_url"`
	EventDepartment   *string `json:"event_department"`
	EventClub         *string `json:"event_club"`
	EventApprovalStatus string `json:"event_approval_status" validate:"omitempty,oneof=pending approved rejected"`
	EventIsFeatured   bool    `json:"event_is_featured"`
}

// EventUpdateRequest is an explicit changeset: only non-nil fields are
// patched, unknown fields are rejected at the JSON boundary. Approval status
// is deliberately absent here; it only moves through the approve/reject
// endpoints.
type EventUpdateRequest struct {
	EventTitle        *string `json:"event_title" validate:"omitempty,min=3,max=255"`
	EventDescription  *string `json:"event_description"`
	EventCategory     *string `json:"event_category" validate:"omitempty,max=50"`
	EventLocation     *string `json:"event_location" validate:"omitempty,max=255"`
	EventDate         *string `json:"event_date"`
	EventStatus       *string `json:"event_status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	EventMaxAttendees *int    `json:"event_max_attendees" validate:"omitempty,gt=0"`
	EventPosterDataURL *string `json:"event_poster_data_url"`
	EventDepartment   *string `json:"event_department"`
	EventClub         *string `json:"event_club"`
	EventIsFeatured   *bool   `json:"event_is_featured"`
}

// ================== RESPONSE ==================

type EventResponse struct {
	EventID            uuid.UUID `json:"event_id"`
	EventTitle         string    `json:"event_title"`
	EventDescription   string    `json:"event_description"`
	EventCategory      string    `json:"event_category"`
	EventLocation      string    `json:"event_location"`
	EventDate          string    `json:"event_date"`
	EventStatus        string    `json:"event_status"`
	EventMaxAttendees  *int      `json:"event_max_attendees,omitempty"`
	EventOrganizerID   uuid.UUID `json:"event_organizer_id"`
	EventOrganizerName string    `json:"event_organizer_name"`
	EventPosterDataURL string    `json:"event_poster_data_url,omitempty"`
	EventPosterThumbURL string   `json:"event_poster_thumb_url,omitempty"`
	EventDepartment    *string   `json:"event_department,omitempty"`
	EventClub          *string   `json:"event_club,omitempty"`
	EventApprovalStatus string   `json:"event_approval_status"`
	EventIsFeatured    bool      `json:"event_is_featured"`
	EventAttendeeCount int       `json:"event_attendee_count"`
	EventCreatedAt     string    `json:"event_created_at"`
}

// ================ CONVERSION =================

func (r *EventRequest) ToModel(organizerID uuid.UUID, organizerName string) (*model.EventModel, error) {
	date, err := time.Parse(time.RFC3339, r.EventDate)
	if err != nil {
		return nil, err
	}
	status := r.EventStatus
	if status == "" {
		status = model.EventStatusUpcoming
	}
	approval := r.EventApprovalStatus
	if approval == "" {
		approval = model.ApprovalStatusPending
	}
	return &model.EventModel{
		EventTitle:          r.EventTitle,
		EventDescription:    r.EventDescription,
		EventCategory:       r.EventCategory,
		EventLocation:       r.EventLocation,
		EventDate:           date,
		EventStatus:         status,
		EventMaxAttendees:   r.EventMaxAttendees,
		EventOrganizerID:    organizerID,
		EventOrganizerName:  organizerName,
		EventPosterDataURL:  r.EventPosterDataURL,
		EventDepartment:     r.EventDepartment,
		EventClub:           r.EventClub,
		EventApprovalStatus: approval,
		EventIsFeatured:     r.EventIsFeatured,
	}, nil
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:             m.EventID,
		EventTitle:          m.EventTitle,
		EventDescription:    m.EventDescription,
		EventCategory:       m.EventCategory,
		EventLocation:       m.EventLocation,
		EventDate:           m.EventDate.Format(time.RFC3339),
		EventStatus:         m.EventStatus,
		EventMaxAttendees:   m.EventMaxAttendees,
		EventOrganizerID:    m.EventOrganizerID,
		EventOrganizerName:  m.EventOrganizerName,
		EventPosterDataURL:  m.EventPosterDataURL,
		EventPosterThumbURL: m.EventPosterThumbURL,
		EventDepartment:     m.EventDepartment,
		EventClub:           m.EventClub,
		EventApprovalStatus: m.EventApprovalStatus,
		EventIsFeatured:     m.EventIsFeatured,
		EventAttendeeCount:  len(m.Registrations),
		EventCreatedAt:      m.EventCreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToEventResponse(&models[i]))
	}
	return result
}

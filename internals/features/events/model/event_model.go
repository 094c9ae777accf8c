package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event lifecycle status, set by the organizer (never auto-transitioned by time)
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Approval workflow gate controlling visibility to non-privileged users
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventCategory    string    `gorm:"column:event_category;type:varchar(50);not null;index:idx_events_category" json:"event_category"`
	EventLocation    string    `gorm:"column:event_location;type:varchar(255)" json:"event_location"`
	EventDate        time.Time `gorm:"column:event_date;not null;index:idx_events_date" json:"event_date"`
	EventStatus      string    `gorm:"column:event_status;type:varchar(20);not null;default:'upcoming'" json:"event_status"`

	// nil means unlimited capacity
	EventMaxAttendees *int `gorm:"column:event_max_attendees" json:"event_max_attendees,omitempty"`

	EventOrganizerID   uuid.UUID `gorm:"column:event_organizer_id;type:uuid;not null;index:idx_events_organizer_id" json:"event_organizer_id"`
	EventOrganizerName string    `gorm:"column:event_organizer_name;type:varchar(100)" json:"event_organizer_name"`

	EventPosterDataURL string `gorm:"column:event_poster_data_url;type:text" json:"event_poster_data_url,omitempty"`
	EventPosterThumbURL string `gorm:"column:event_poster_thumb_url;type:text" json:"event_poster_thumb_url,omitempty"`

	EventDepartment *string `gorm:"column:event_department;type:varchar(100)" json:"event_department,omitempty"`
	EventClub       *string `gorm:"column:event_club;type:varchar(100)" json:"event_club,omitempty"`

	EventApprovalStatus string `gorm:"column:event_approval_status;type:varchar(20);not null;default:'pending';index:idx_events_approval" json:"event_approval_status"`
	EventIsFeatured     bool   `gorm:"column:event_is_featured;not null;default:false" json:"event_is_featured"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`

	Registrations []EventRegistrationModel `gorm:"foreignKey:RegistrationEventID;references:EventID;constraint:OnDelete:CASCADE" json:"registrations,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

// BeforeCreate assigns the id app-side so the model also works on databases
// without gen_random_uuid()
func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}

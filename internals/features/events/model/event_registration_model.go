package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationTypeIndividual = "individual"
	RegistrationTypeTeam       = "team"
)

// Registration status is assigned once at registration time from the capacity
// check and is never recomputed afterwards, even if capacity or the attendee
// list changes later.
const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusWaitlisted = "waitlisted"
	RegistrationStatusConfirmed  = "confirmed"
)

type EventRegistrationModel struct {
	RegistrationID      uuid.UUID `gorm:"column:registration_id;type:uuid;primaryKey" json:"registration_id"`
	RegistrationEventID uuid.UUID `gorm:"column:registration_event_id;type:uuid;not null;index:idx_registrations_event_id" json:"registration_event_id"`
	RegistrationUserID  uuid.UUID `gorm:"column:registration_user_id;type:uuid;not null;index:idx_registrations_user_id" json:"registration_user_id"`

	RegistrationType     string  `gorm:"column:registration_type;type:varchar(20);not null;default:'individual'" json:"registration_type"`
	RegistrationTeamName *string `gorm:"column:registration_team_name;type:varchar(100)" json:"registration_team_name,omitempty"`
	RegistrationMembers  *int    `gorm:"column:registration_members" json:"registration_members,omitempty"`

	RegistrationStatus string `gorm:"column:registration_status;type:varchar(20);not null" json:"registration_status"`

	RegistrationRegisteredAt time.Time `gorm:"column:registration_registered_at;not null;autoCreateTime" json:"registration_registered_at"`

	RegistrationPresent *bool `gorm:"column:registration_present" json:"registration_present,omitempty"`

	// Monotonic: set once a certificate has been generated, never unset
	RegistrationCertificateIssued bool `gorm:"column:registration_certificate_issued;not null;default:false" json:"registration_certificate_issued"`

	// Captured from the registrant at registration time; may lag their profile
	RegistrationDepartment *string `gorm:"column:registration_department;type:varchar(100)" json:"registration_department,omitempty"`
}

func (EventRegistrationModel) TableName() string {
	return "event_registrations"
}

func (m *EventRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.RegistrationID == uuid.Nil {
		m.RegistrationID = uuid.New()
	}
	return nil
}

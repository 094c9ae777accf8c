package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/events/model"
)

// ================== REQUEST ==================

type RegisterIndividualRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
}

type RegisterTeamRequest struct {
	EventID  uuid.UUID `json:"event_id" validate:"required"`
	TeamName string    `json:"team_name" validate:"required,min=2,max=100"`
	Members  int       `json:"members" validate:"required,gt=0"`
}

// ================== RESPONSE ==================

type RegistrationResponse struct {
	RegistrationID                uuid.UUID `json:"registration_id"`
	RegistrationEventID           uuid.UUID `json:"registration_event_id"`
	RegistrationUserID            uuid.UUID `json:"registration_user_id"`
	RegistrationType              string    `json:"registration_type"`
	RegistrationTeamName          *string   `json:"registration_team_name,omitempty"`
	RegistrationMembers           *int      `json:"registration_members,omitempty"`
	RegistrationStatus            string    `json:"registration_status"`
	RegistrationRegisteredAt      string    `json:"registration_registered_at"`
	RegistrationPresent           *bool     `json:"registration_present,omitempty"`
	RegistrationCertificateIssued bool      `json:"registration_certificate_issued"`
	RegistrationDepartment        *string   `json:"registration_department,omitempty"`
}

type DepartmentStat struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
	Present    int    `json:"present"`
}

// ================ CONVERSION =================

func ToRegistrationResponse(m *model.EventRegistrationModel) *RegistrationResponse {
	return &RegistrationResponse{
		RegistrationID:                m.RegistrationID,
		RegistrationEventID:           m.RegistrationEventID,
		RegistrationUserID:            m.RegistrationUserID,
		RegistrationType:              m.RegistrationType,
		RegistrationTeamName:          m.RegistrationTeamName,
		RegistrationMembers:           m.RegistrationMembers,
		RegistrationStatus:            m.RegistrationStatus,
		RegistrationRegisteredAt:      m.RegistrationRegisteredAt.Format("2006-01-02 15:04:05"),
		RegistrationPresent:           m.RegistrationPresent,
		RegistrationCertificateIssued: m.RegistrationCertificateIssued,
		RegistrationDepartment:        m.RegistrationDepartment,
	}
}

func ToRegistrationResponseList(models []model.EventRegistrationModel) []RegistrationResponse {
	result := make([]RegistrationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToRegistrationResponse(&models[i]))
	}
	return result
}

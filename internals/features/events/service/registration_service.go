package service

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/events/dto"
	"campushub_backend/internals/features/events/model"
)

/* ==========================
   Registration
========================== */

// calcStatus freezes the registration status at registration time: waitlisted
// iff a capacity is set and already met, otherwise registered. It is never
// recomputed when attendees are removed or capacity changes later.
func calcStatus(ev *model.EventModel, currentCount int64) string {
	if ev.EventMaxAttendees != nil && currentCount >= int64(*ev.EventMaxAttendees) {
		return model.RegistrationStatusWaitlisted
	}
	return model.RegistrationStatusRegistered
}

// RegisterIndividual registers a user for an event. If the user already holds
// any registration for the event (individual or team), that record is returned
// unchanged — re-registration is idempotent, not an error.
func (s *EventService) RegisterIndividual(eventID, userID uuid.UUID, department *string) (*model.EventRegistrationModel, error) {
	var reg model.EventRegistrationModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ev model.EventModel
		if err := tx.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
			return err
		}

		var existing model.EventRegistrationModel
		err := tx.Where("registration_event_id = ? AND registration_user_id = ?", eventID, userID).
			First(&existing).Error
		if err == nil {
			reg = existing
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		var count int64
		if err := tx.Model(&model.EventRegistrationModel{}).
			Where("registration_event_id = ?", eventID).
			Count(&count).Error; err != nil {
			return err
		}

		reg = model.EventRegistrationModel{
			RegistrationEventID:    eventID,
			RegistrationUserID:     userID,
			RegistrationType:       model.RegistrationTypeIndividual,
			RegistrationStatus:     calcStatus(&ev, count),
			RegistrationDepartment: department,
		}
		return tx.Create(&reg).Error
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// RegisterTeam appends a team registration. Team registrations are not
// deduplicated by user: one user may submit multiple teams for the same event.
func (s *EventService) RegisterTeam(eventID, userID uuid.UUID, teamName string, members int, department *string) (*model.EventRegistrationModel, error) {
	var reg model.EventRegistrationModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ev model.EventModel
		if err := tx.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.EventRegistrationModel{}).
			Where("registration_event_id = ?", eventID).
			Count(&count).Error; err != nil {
			return err
		}

		reg = model.EventRegistrationModel{
			RegistrationEventID:    eventID,
			RegistrationUserID:     userID,
			RegistrationType:       model.RegistrationTypeTeam,
			RegistrationTeamName:   &teamName,
			RegistrationMembers:    &members,
			RegistrationStatus:     calcStatus(&ev, count),
			RegistrationDepartment: department,
		}
		return tx.Create(&reg).Error
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// RegistrationStatusForUser returns the caller's own registration status for
// an event, or "" when they are not registered.
func (s *EventService) RegistrationStatusForUser(eventID, userID uuid.UUID) (string, error) {
	var reg model.EventRegistrationModel
	err := s.DB.Where("registration_event_id = ? AND registration_user_id = ?", eventID, userID).
		First(&reg).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return reg.RegistrationStatus, nil
}

func (s *EventService) RegistrationsByEvent(eventID uuid.UUID) ([]model.EventRegistrationModel, error) {
	var regs []model.EventRegistrationModel
	err := s.DB.Where("registration_event_id = ?", eventID).
		Order("registration_registered_at ASC").
		Find(&regs).Error
	return regs, err
}

/* ==========================
   Attendance via QR payload
========================== */

// AttendPayload is the serialized form embedded in a scannable code.
type AttendPayload struct {
	T   string `json:"t"`
	EID string `json:"eid"`
	RID string `json:"rid"`
}

// RegistrationQRData serializes the attend payload for a registration.
func RegistrationQRData(eventID, regID uuid.UUID) (string, error) {
	b, err := json.Marshal(AttendPayload{
		T:   "attend",
		EID: eventID.String(),
		RID: regID.String(),
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarkAttendanceByRegID sets present=true on the matching registration.
// Registration ids are primary keys, so this is a direct indexed lookup.
// Missing ids are a silent no-op.
func (s *EventService) MarkAttendanceByRegID(regID uuid.UUID) (int64, error) {
	res := s.DB.Model(&model.EventRegistrationModel{}).
		Where("registration_id = ?", regID).
		Update("registration_present", true)
	return res.RowsAffected, res.Error
}

// MarkAttendanceFromQRPayload parses a scanned payload and delegates.
// Malformed payloads are swallowed silently.
func (s *EventService) MarkAttendanceFromQRPayload(payload string) error {
	var data AttendPayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil
	}
	regID, err := uuid.Parse(data.RID)
	if err != nil {
		return nil
	}
	_, err = s.MarkAttendanceByRegID(regID)
	return err
}

/* ==========================
   Stats & certificates
========================== */

// DepartmentStats aggregates attendee and present counts per department.
// Registrations without a department land in the "Unknown" bucket.
func (s *EventService) DepartmentStats(eventID uuid.UUID) ([]dto.DepartmentStat, error) {
	var stats []dto.DepartmentStat
	err := s.DB.Model(&model.EventRegistrationModel{}).
		Select(`CASE WHEN registration_department IS NULL OR registration_department = '' THEN 'Unknown' ELSE registration_department END AS department,
			COUNT(*) AS count,
			SUM(CASE WHEN registration_present THEN 1 ELSE 0 END) AS present`).
		Where("registration_event_id = ?", eventID).
		Group("CASE WHEN registration_department IS NULL OR registration_department = '' THEN 'Unknown' ELSE registration_department END").
		Scan(&stats).Error
	return stats, err
}

// MarkCertificateIssued flags the registration once a certificate has been
// generated. The flag is monotonic: it is only ever set true.
func (s *EventService) MarkCertificateIssued(regID uuid.UUID) (int64, error) {
	res := s.DB.Model(&model.EventRegistrationModel{}).
		Where("registration_id = ?", regID).
		Update("registration_certificate_issued", true)
	return res.RowsAffected, res.Error
}

// RegistrationByID fetches one registration (used by certificate issuance and
// attendance confirmation responses).
func (s *EventService) RegistrationByID(regID uuid.UUID) (*model.EventRegistrationModel, error) {
	var reg model.EventRegistrationModel
	if err := s.DB.Where("registration_id = ?", regID).First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	clubModel "campushub_backend/internals/features/clubs/model"
	eventModel "campushub_backend/internals/features/events/model"
	lostModel "campushub_backend/internals/features/lostfound/model"
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

type Counters struct {
	EventsCreated      int64
	EventsParticipated int64
	EventsAttended     int64
	CertificatesEarned int64
	ClubsJoined        int64
	LostItemsPosted    int64
}

// Summarize aggregates the user's footprint across the dashboard.
func (s *ActivityService) Summarize(userID uuid.UUID) (Counters, error) {
	var out Counters

	if err := s.DB.Model(&eventModel.EventModel{}).
		Where("event_organizer_id = ?", userID).
		Count(&out.EventsCreated).Error; err != nil {
		return out, err
	}
	if err := s.DB.Model(&eventModel.EventRegistrationModel{}).
		Where("registration_user_id = ?", userID).
		Count(&out.EventsParticipated).Error; err != nil {
		return out, err
	}
	if err := s.DB.Model(&eventModel.EventRegistrationModel{}).
		Where("registration_user_id = ? AND registration_present = ?", userID, true).
		Count(&out.EventsAttended).Error; err != nil {
		return out, err
	}
	if err := s.DB.Model(&eventModel.EventRegistrationModel{}).
		Where("registration_user_id = ? AND registration_certificate_issued = ?", userID, true).
		Count(&out.CertificatesEarned).Error; err != nil {
		return out, err
	}
	if err := s.DB.Model(&clubModel.ClubMemberModel{}).
		Where("club_member_user_id = ?", userID).
		Count(&out.ClubsJoined).Error; err != nil {
		return out, err
	}
	if err := s.DB.Model(&lostModel.LostItemModel{}).
		Where("lost_item_poster_id = ?", userID).
		Count(&out.LostItemsPosted).Error; err != nil {
		return out, err
	}

	return out, nil
}

// CreatedEvents lists the user's own events, newest date first.
func (s *ActivityService) CreatedEvents(userID uuid.UUID) ([]eventModel.EventModel, error) {
	var events []eventModel.EventModel
	err := s.DB.Preload("Registrations").
		Where("event_organizer_id = ?", userID).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

// Registrations lists the user's registrations, most recent first.
func (s *ActivityService) Registrations(userID uuid.UUID) ([]eventModel.EventRegistrationModel, error) {
	var regs []eventModel.EventRegistrationModel
	err := s.DB.Where("registration_user_id = ?", userID).
		Order("registration_registered_at DESC").
		Find(&regs).Error
	return regs, err
}

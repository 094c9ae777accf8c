package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/events/dto"
	"campushub_backend/internals/features/events/model"
)

const (
	featuredCap = 5
	upcomingCap = 10
)

// EventService is the sole authority for event and registration state.
// Every mutation runs through the injected *gorm.DB so tests can substitute
// an in-memory database.
type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

/* ==========================
   CRUD
========================== */

func (s *EventService) GetAll() ([]model.EventModel, error) {
	var events []model.EventModel
	err := s.DB.Preload("Registrations").Find(&events).Error
	return events, err
}

func (s *EventService) GetByID(id uuid.UUID) (*model.EventModel, error) {
	var ev model.EventModel
	if err := s.DB.Preload("Registrations").Where("event_id = ?", id).First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// Create persists a new event. Approval status defaults to pending and the
// attendee list starts empty.
func (s *EventService) Create(ev *model.EventModel) error {
	if ev.EventApprovalStatus == "" {
		ev.EventApprovalStatus = model.ApprovalStatusPending
	}
	if ev.EventStatus == "" {
		ev.EventStatus = model.EventStatusUpcoming
	}
	ev.Registrations = nil
	return s.DB.Create(ev).Error
}

// Update applies the explicit changeset: only non-nil fields are patched.
// Business rules are deliberately not enforced here (shrinking capacity below
// the current registrant count is permitted silently; registration statuses
// are never recomputed).
func (s *EventService) Update(id uuid.UUID, req *dto.EventUpdateRequest) (*model.EventModel, error) {
	var ev model.EventModel
	if err := s.DB.Where("event_id = ?", id).First(&ev).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventCategory != nil {
		updates["event_category"] = *req.EventCategory
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventDate != nil {
		date, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			return nil, err
		}
		updates["event_date"] = date
	}
	if req.EventStatus != nil {
		updates["event_status"] = *req.EventStatus
	}
	if req.EventMaxAttendees != nil {
		updates["event_max_attendees"] = *req.EventMaxAttendees
	}
	if req.EventPosterDataURL != nil {
		updates["event_poster_data_url"] = *req.EventPosterDataURL
	}
	if req.EventDepartment != nil {
		updates["event_department"] = *req.EventDepartment
	}
	if req.EventClub != nil {
		updates["event_club"] = *req.EventClub
	}
	if req.EventIsFeatured != nil {
		updates["event_is_featured"] = *req.EventIsFeatured
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&ev).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.Preload("Registrations").Where("event_id = ?", id).First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// Remove hard-deletes the event and all embedded registrations. Removing a
// non-existent id is a silent no-op.
func (s *EventService) Remove(id uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("registration_event_id = ?", id).
			Delete(&model.EventRegistrationModel{}).Error; err != nil {
			return err
		}
		return tx.Where("event_id = ?", id).Delete(&model.EventModel{}).Error
	})
}

// GetUserEvents returns all events owned by the given organizer.
func (s *EventService) GetUserEvents(organizerID uuid.UUID) ([]model.EventModel, error) {
	var events []model.EventModel
	err := s.DB.Preload("Registrations").
		Where("event_organizer_id = ?", organizerID).
		Find(&events).Error
	return events, err
}

/* ==========================
   Search / curated lists
========================== */

// Search filters events: case-insensitive substring over
// title+description+location, exact category match, and date >= now when
// onlyUpcoming is set. Order-preserving relative to the underlying listing.
func (s *EventService) Search(q, category string, onlyUpcoming bool) ([]model.EventModel, error) {
	tx := s.DB.Preload("Registrations").Model(&model.EventModel{})

	if strings.TrimSpace(q) != "" {
		needle := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
		tx = tx.Where(
			"LOWER(event_title || ' ' || event_description || ' ' || event_location) LIKE ?",
			needle,
		)
	}
	if category != "" {
		tx = tx.Where("event_category = ?", category)
	}
	if onlyUpcoming {
		tx = tx.Where("event_date >= ?", time.Now())
	}

	var events []model.EventModel
	err := tx.Find(&events).Error
	return events, err
}

// Featured returns approved featured events, most-registered first, capped at 5.
func (s *EventService) Featured() ([]model.EventModel, error) {
	var events []model.EventModel
	err := s.DB.Preload("Registrations").
		Where("event_is_featured = ? AND event_approval_status = ?", true, model.ApprovalStatusApproved).
		Order("(SELECT COUNT(*) FROM event_registrations r WHERE r.registration_event_id = events.event_id) DESC").
		Limit(featuredCap).
		Find(&events).Error
	return events, err
}

// Upcoming returns approved featured events that have not started yet,
// soonest first, capped at 10.
func (s *EventService) Upcoming() ([]model.EventModel, error) {
	var events []model.EventModel
	err := s.DB.Preload("Registrations").
		Where("event_is_featured = ? AND event_approval_status = ? AND event_date >= ?",
			true, model.ApprovalStatusApproved, time.Now()).
		Order("event_date ASC").
		Limit(upcomingCap).
		Find(&events).Error
	return events, err
}

/* ==========================
   Approval workflow
========================== */

// Approve sets the approval gate to approved. Missing ids are a silent no-op;
// the returned count lets callers surface a 404 when they asked about a
// specific resource.
func (s *EventService) Approve(id uuid.UUID) (int64, error) {
	res := s.DB.Model(&model.EventModel{}).
		Where("event_id = ?", id).
		Update("event_approval_status", model.ApprovalStatusApproved)
	return res.RowsAffected, res.Error
}

func (s *EventService) Reject(id uuid.UUID) (int64, error) {
	res := s.DB.Model(&model.EventModel{}).
		Where("event_id = ?", id).
		Update("event_approval_status", model.ApprovalStatusRejected)
	return res.RowsAffected, res.Error
}

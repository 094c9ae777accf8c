package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/events/dto"
	"campushub_backend/internals/features/events/model"
	notifModel "campushub_backend/internals/features/notifications/model"
	notifService "campushub_backend/internals/features/notifications/service"
	helper "campushub_backend/internals/helpers"
)

// POST /api/u/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// Only admins may pre-approve or feature an event at creation time
	if helper.GetRoleFromLocals(c) != constants.RoleAdmin {
		req.EventApprovalStatus = model.ApprovalStatusPending
		req.EventIsFeatured = false
	}

	ev, err := req.ToModel(userID, helper.GetUserNameFromLocals(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event_date, expected RFC 3339")
	}

	if ev.EventPosterDataURL != "" {
		if thumb, err := helper.PosterThumbDataURL(ev.EventPosterDataURL); err == nil {
			ev.EventPosterThumbURL = thumb
		} else {
			log.Printf("[WARN] poster thumbnail skipped: %v", err)
		}
	}

	if err := ctrl.Service.Create(ev); err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created and awaiting approval", dto.ToEventResponse(ev))
}

// PATCH /api/u/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	if err := ctrl.requireOrganizerOrAdmin(c, id); err != nil {
		return err
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	if req.EventIsFeatured != nil && helper.GetRoleFromLocals(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may feature events")
	}

	if req.EventPosterDataURL != nil && *req.EventPosterDataURL != "" {
		if thumb, err := helper.PosterThumbDataURL(*req.EventPosterDataURL); err == nil {
			if uerr := ctrl.DB.Model(&model.EventModel{}).
				Where("event_id = ?", id).
				Update("event_poster_thumb_url", thumb).Error; uerr != nil {
				log.Printf("[WARN] poster thumbnail update failed: %v", uerr)
			}
		}
	}

	ev, err := ctrl.Service.Update(id, &req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] update event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated", dto.ToEventResponse(ev))
}

// DELETE /api/u/events/:id — hard delete, registrations go with it
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	if err := ctrl.requireOrganizerOrAdmin(c, id); err != nil {
		return err
	}

	if err := ctrl.Service.Remove(id); err != nil {
		log.Printf("[ERROR] delete event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted", nil)
}

// PATCH /api/a/events/:id/approve
func (ctrl *EventController) ApproveEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	n, err := ctrl.Service.Approve(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve event")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	if ev, err := ctrl.Service.GetByID(id); err == nil {
		notifService.Notify(ctrl.DB, notifService.NotifyInput{
			UserID:  ev.EventOrganizerID,
			Type:    notifModel.NotificationTypeEvent,
			Title:   "Event approved",
			Message: "Your event \"" + ev.EventTitle + "\" has been approved and is now visible.",
			Data:    map[string]any{"event_id": ev.EventID.String()},
		})
	}

	return helper.JsonUpdated(c, "Event approved", nil)
}

// PATCH /api/a/events/:id/reject
func (ctrl *EventController) RejectEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	n, err := ctrl.Service.Reject(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject event")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	if ev, err := ctrl.Service.GetByID(id); err == nil {
		notifService.Notify(ctrl.DB, notifService.NotifyInput{
			UserID:  ev.EventOrganizerID,
			Type:    notifModel.NotificationTypeEvent,
			Title:   "Event rejected",
			Message: "Your event \"" + ev.EventTitle + "\" was not approved.",
			Data:    map[string]any{"event_id": ev.EventID.String()},
		})
	}

	return helper.JsonUpdated(c, "Event rejected", nil)
}

// GET /api/a/events — admins see every event regardless of approval state
func (ctrl *EventController) GetAllEventsAdmin(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := ctrl.DB.Preload("Registrations").
		Order("event_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	return helper.JsonList(c, "Events fetched",
		dto.ToEventResponseList(events),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

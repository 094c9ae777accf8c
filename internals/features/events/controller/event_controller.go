package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/events/dto"
	"campushub_backend/internals/features/events/model"
	"campushub_backend/internals/features/events/service"
	helper "campushub_backend/internals/helpers"
)

type EventController struct {
	DB      *gorm.DB
	Service *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Service: service.NewEventService(db)}
}

// GET /api/public/events?q=&category=&upcoming=&page=&per_page=
// Public listing only surfaces approved events.
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	q := c.Query("q")
	category := c.Query("category")
	onlyUpcoming, _ := strconv.ParseBool(c.Query("upcoming", "false"))

	events, err := ctrl.Service.Search(q, category, onlyUpcoming)
	if err != nil {
		log.Printf("[ERROR] event search: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search events")
	}

	approved := events[:0]
	for _, ev := range events {
		if ev.EventApprovalStatus == model.ApprovalStatusApproved {
			approved = append(approved, ev)
		}
	}

	paging := helper.ResolvePaging(c, 10, 100)
	total := int64(len(approved))
	start := paging.Offset
	if start > len(approved) {
		start = len(approved)
	}
	end := start + paging.Limit
	if end > len(approved) {
		end = len(approved)
	}

	return helper.JsonList(c, "Events fetched",
		dto.ToEventResponseList(approved[start:end]),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/events/featured
func (ctrl *EventController) GetFeatured(c *fiber.Ctx) error {
	events, err := ctrl.Service.Featured()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch featured events")
	}
	return helper.JsonOK(c, "Featured events fetched", dto.ToEventResponseList(events))
}

// GET /api/public/events/upcoming
func (ctrl *EventController) GetUpcoming(c *fiber.Ctx) error {
	events, err := ctrl.Service.Upcoming()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch upcoming events")
	}
	return helper.JsonOK(c, "Upcoming events fetched", dto.ToEventResponseList(events))
}

// GET /api/public/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	ev, err := ctrl.Service.GetByID(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonOK(c, "Event found", dto.ToEventResponse(ev))
}

// GET /api/u/events/mine — events the caller organizes
func (ctrl *EventController) GetMyEvents(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	events, err := ctrl.Service.GetUserEvents(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch your events")
	}
	return helper.JsonOK(c, "Your events fetched", dto.ToEventResponseList(events))
}

// GET /api/u/events/:id/department-stats — organizer or admin only
func (ctrl *EventController) GetDepartmentStats(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	if err := ctrl.requireOrganizerOrAdmin(c, id); err != nil {
		return err
	}

	stats, err := ctrl.Service.DepartmentStats(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate department stats")
	}
	return helper.JsonOK(c, "Department stats fetched", stats)
}

// requireOrganizerOrAdmin gates event mutations on ownership.
func (ctrl *EventController) requireOrganizerOrAdmin(c *fiber.Ctx, eventID uuid.UUID) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	if helper.GetRoleFromLocals(c) == constants.RoleAdmin {
		return nil
	}
	var organizerID uuid.UUID
	if err := ctrl.DB.Model(&model.EventModel{}).
		Select("event_organizer_id").
		Where("event_id = ?", eventID).
		Take(&organizerID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if organizerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the organizer or an admin may do this")
	}
	return nil
}

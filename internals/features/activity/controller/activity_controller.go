package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/activity/dto"
	"campushub_backend/internals/features/activity/service"
	eventDTO "campushub_backend/internals/features/events/dto"
	helper "campushub_backend/internals/helpers"
)

type ActivityController struct {
	DB      *gorm.DB
	Service *service.ActivityService
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db, Service: service.NewActivityService(db)}
}

// GetMyActivity returns the authenticated user's dashboard rollup.
func (ctrl *ActivityController) GetMyActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	counters, err := ctrl.Service.Summarize(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	created, err := ctrl.Service.CreatedEvents(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	regs, err := ctrl.Service.Registrations(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	return helper.JsonOK(c, "OK", dto.ActivityResponse{
		Summary: dto.ActivitySummary{
			EventsCreated:      counters.EventsCreated,
			EventsParticipated: counters.EventsParticipated,
			EventsAttended:     counters.EventsAttended,
			CertificatesEarned: counters.CertificatesEarned,
			ClubsJoined:        counters.ClubsJoined,
			LostItemsPosted:    counters.LostItemsPosted,
		},
		CreatedEvents: eventDTO.ToEventResponseList(created),
		Registrations: eventDTO.ToRegistrationResponseList(regs),
	})
}

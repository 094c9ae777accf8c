package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/events/dto"
	"campushub_backend/internals/features/events/service"
	notifModel "campushub_backend/internals/features/notifications/model"
	notifService "campushub_backend/internals/features/notifications/service"
	helper "campushub_backend/internals/helpers"
)

// POST /api/u/event-registrations/individual
func (ctrl *EventController) RegisterIndividual(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.RegisterIndividualRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var department *string
	if d := helper.GetDepartmentFromLocals(c); d != "" {
		department = &d
	}

	reg, err := ctrl.Service.RegisterIndividual(req.EventID, userID, department)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] register individual: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	if ev, gerr := ctrl.Service.GetByID(req.EventID); gerr == nil {
		notifService.Notify(ctrl.DB, notifService.NotifyInput{
			UserID:  userID,
			Type:    notifModel.NotificationTypeRegistration,
			Title:   "Registration received",
			Message: "You are " + reg.RegistrationStatus + " for \"" + ev.EventTitle + "\".",
			Data:    map[string]any{"event_id": ev.EventID.String(), "registration_id": reg.RegistrationID.String()},
		})
	}

	return helper.JsonCreated(c, "Registered", dto.ToRegistrationResponse(reg))
}

// POST /api/u/event-registrations/team
func (ctrl *EventController) RegisterTeam(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.RegisterTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var department *string
	if d := helper.GetDepartmentFromLocals(c); d != "" {
		department = &d
	}

	reg, err := ctrl.Service.RegisterTeam(req.EventID, userID, req.TeamName, req.Members, department)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] register team: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register team")
	}

	return helper.JsonCreated(c, "Team registered", dto.ToRegistrationResponse(reg))
}

// GET /api/u/event-registrations/status/:id
func (ctrl *EventController) GetMyRegistrationStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	status, err := ctrl.Service.RegistrationStatusForUser(eventID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check registration")
	}

	var statusOut *string
	if status != "" {
		statusOut = &status
	}
	return helper.JsonOK(c, "Registration status fetched", fiber.Map{"status": statusOut})
}

// GET /api/u/event-registrations/by-event/:id — organizer or admin
func (ctrl *EventController) GetRegistrantsByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	if err := ctrl.requireOrganizerOrAdmin(c, eventID); err != nil {
		return err
	}

	regs, err := ctrl.Service.RegistrationsByEvent(eventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return helper.JsonOK(c, "Registrations fetched", dto.ToRegistrationResponseList(regs))
}

// GET /api/u/event-registrations/:id/qr — the payload embedded in the scannable code
func (ctrl *EventController) GetRegistrationQR(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	reg, err := ctrl.Service.RegistrationByID(regID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	if reg.RegistrationUserID != userID && helper.GetRoleFromLocals(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your registration")
	}

	payload, err := service.RegistrationQRData(reg.RegistrationEventID, reg.RegistrationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build QR payload")
	}
	return helper.JsonOK(c, "QR payload built", fiber.Map{"payload": payload})
}

// POST /api/u/event-registrations/scan — body carries the raw scanned payload.
// Malformed payloads are swallowed: the scanner UI treats them as "nothing
// happened", matching the store contract.
func (ctrl *EventController) ScanAttendance(c *fiber.Ctx) error {
	var body struct {
		Payload string `json:"payload"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := ctrl.Service.MarkAttendanceFromQRPayload(body.Payload); err != nil {
		log.Printf("[ERROR] attendance scan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	return helper.JsonUpdated(c, "Attendance processed", nil)
}

// PATCH /api/u/event-registrations/:id/present — organizer/faculty marking by id
func (ctrl *EventController) MarkPresent(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	reg, err := ctrl.Service.RegistrationByID(regID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	if err := ctrl.requireOrganizerOrAdmin(c, reg.RegistrationEventID); err != nil {
		return err
	}

	if _, err := ctrl.Service.MarkAttendanceByRegID(regID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	return helper.JsonUpdated(c, "Attendance marked", nil)
}

// PATCH /api/u/event-registrations/:id/certificate — certificate generator callback
func (ctrl *EventController) MarkCertificateIssued(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	reg, err := ctrl.Service.RegistrationByID(regID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	if err := ctrl.requireOrganizerOrAdmin(c, reg.RegistrationEventID); err != nil {
		return err
	}

	if _, err := ctrl.Service.MarkCertificateIssued(regID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark certificate issued")
	}

	if ev, gerr := ctrl.Service.GetByID(reg.RegistrationEventID); gerr == nil {
		notifService.Notify(ctrl.DB, notifService.NotifyInput{
			UserID:  reg.RegistrationUserID,
			Type:    notifModel.NotificationTypeCertificate,
			Title:   "Certificate issued",
			Message: "Your certificate for \"" + ev.EventTitle + "\" is now available.",
			Data:    map[string]any{"event_id": ev.EventID.String(), "registration_id": regID.String()},
		})
	}

	return helper.JsonUpdated(c, "Certificate marked as issued", nil)
}

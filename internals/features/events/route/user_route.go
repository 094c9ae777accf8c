package route

import (
	"campushub_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login required; any authenticated role.
func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	event := api.Group("/events")
	event.Post("/", eventCtrl.CreateEvent)
	event.Patch("/:id", eventCtrl.UpdateEvent)
	event.Delete("/:id", eventCtrl.DeleteEvent)
	event.Get("/mine", eventCtrl.GetMyEvents)
	event.Get("/:id/department-stats", eventCtrl.GetDepartmentStats)

	reg := api.Group("/event-registrations")
	reg.Post("/individual", eventCtrl.RegisterIndividual)
	reg.Post("/team", eventCtrl.RegisterTeam)
	reg.Get("/status/:id", eventCtrl.GetMyRegistrationStatus)
	reg.Get("/by-event/:id", eventCtrl.GetRegistrantsByEvent)
	reg.Get("/:id/qr", eventCtrl.GetRegistrationQR)
	reg.Post("/scan", eventCtrl.ScanAttendance)
	reg.Patch("/:id/present", eventCtrl.MarkPresent)
	reg.Patch("/:id/certificate", eventCtrl.MarkCertificateIssued)
}

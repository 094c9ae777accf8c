package route

import (
	"campushub_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin only: moderation queue plus approve/reject.
func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	event := api.Group("/events")
	event.Get("/", eventCtrl.GetAllEventsAdmin)
	event.Patch("/:id/approve", eventCtrl.ApproveEvent)
	event.Patch("/:id/reject", eventCtrl.RejectEvent)
}

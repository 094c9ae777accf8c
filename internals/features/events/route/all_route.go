package route

import (
	"campushub_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public read-only surface: approved events only.
func AllEventRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	event := api.Group("/events")
	event.Get("/", eventCtrl.GetEvents)
	event.Get("/featured", eventCtrl.GetFeatured)
	event.Get("/upcoming", eventCtrl.GetUpcoming)
	event.Get("/:id", eventCtrl.GetEventByID)
}

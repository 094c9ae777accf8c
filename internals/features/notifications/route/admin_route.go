package route

import (
	"campushub_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NotificationAdminRoutes(api fiber.Router, db *gorm.DB) {
	notifCtrl := controller.NewNotificationController(db)
	notif := api.Group("/notifications")
	notif.Post("/announcements", notifCtrl.CreateAnnouncement)
}

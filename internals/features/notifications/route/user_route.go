package route

import (
	"campushub_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	notifCtrl := controller.NewNotificationController(db)
	notif := api.Group("/notifications")
	notif.Get("/", notifCtrl.GetMyNotifications)
	notif.Patch("/read-all", notifCtrl.MarkAllRead)
	notif.Patch("/:id/read", notifCtrl.MarkRead)
	notif.Delete("/clear", notifCtrl.ClearAll)
	notif.Delete("/:id", notifCtrl.Delete)
}

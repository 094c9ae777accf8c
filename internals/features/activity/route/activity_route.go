package route

import (
	"campushub_backend/internals/features/activity/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ActivityUserRoutes(api fiber.Router, db *gorm.DB) {
	activityCtrl := controller.NewActivityController(db)
	api.Get("/activity", activityCtrl.GetMyActivity)
}

package route

import (
	"campushub_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	users := api.Group("/users")
	users.Patch("/profile", userCtrl.UpdateProfile)
}

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	users := api.Group("/users")
	users.Get("/", userCtrl.GetUsers)
	users.Patch("/:id/activate", userCtrl.ActivateUser)
	users.Patch("/:id/deactivate", userCtrl.DeactivateUser)
}

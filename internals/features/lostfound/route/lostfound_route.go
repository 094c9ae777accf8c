package route

import (
	"campushub_backend/internals/features/lostfound/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllLostFoundRoutes(api fiber.Router, db *gorm.DB) {
	itemCtrl := controller.NewLostItemController(db)
	items := api.Group("/lost-items")
	items.Get("/", itemCtrl.GetItems)
	items.Get("/:id", itemCtrl.GetItemByID)
}

func LostFoundUserRoutes(api fiber.Router, db *gorm.DB) {
	itemCtrl := controller.NewLostItemController(db)
	items := api.Group("/lost-items")
	items.Post("/", itemCtrl.CreateItem)
	items.Patch("/:id/claim", itemCtrl.MarkClaimed)
	items.Delete("/:id", itemCtrl.DeleteItem)
}

package route

import (
	"campushub_backend/internals/features/clubs/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClubAdminRoutes(api fiber.Router, db *gorm.DB) {
	clubCtrl := controller.NewClubController(db)
	club := api.Group("/clubs")
	club.Post("/", clubCtrl.CreateClub)
	club.Get("/:id/members", clubCtrl.GetClubMembers)
	club.Put("/:id", clubCtrl.UpdateClub)
	club.Delete("/:id", clubCtrl.DeleteClub)
}

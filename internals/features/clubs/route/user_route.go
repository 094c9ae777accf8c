package route

import (
	"campushub_backend/internals/features/clubs/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClubUserRoutes(api fiber.Router, db *gorm.DB) {
	clubCtrl := controller.NewClubController(db)
	club := api.Group("/clubs")
	club.Get("/mine", clubCtrl.GetMyClubs)
	club.Get("/", clubCtrl.GetClubs)
	club.Get("/:id", clubCtrl.GetClubByID)
	club.Post("/:id/join", clubCtrl.JoinClub)
	club.Post("/:id/leave", clubCtrl.LeaveClub)
}

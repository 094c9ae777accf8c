package route

import (
	"campushub_backend/internals/constants"
	activityRoute "campushub_backend/internals/features/activity/route"
	clubRoute "campushub_backend/internals/features/clubs/route"
	eventRoute "campushub_backend/internals/features/events/route"
	lostfoundRoute "campushub_backend/internals/features/lostfound/route"
	notifRoute "campushub_backend/internals/features/notifications/route"
	authRoute "campushub_backend/internals/features/users/auth/route"
	userRoute "campushub_backend/internals/features/users/user/route"
	authMiddleware "campushub_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts three surfaces:
//
//	/api/public — no auth, read-only
//	/api/u      — any authenticated user
//	/api/a      — admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ========== PUBLIC ==========
	public := api.Group("/public")
	authRoute.AuthRoutes(public, db)
	eventRoute.AllEventRoutes(public, db)
	clubRoute.AllClubRoutes(public, db)
	lostfoundRoute.AllLostFoundRoutes(public, db)

	// ========== AUTHENTICATED ==========
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	authRoute.AuthUserRoutes(user, db)
	userRoute.UserRoutes(user, db)
	eventRoute.EventUserRoutes(user, db)
	clubRoute.ClubUserRoutes(user, db)
	lostfoundRoute.LostFoundUserRoutes(user, db)
	notifRoute.NotificationUserRoutes(user, db)
	activityRoute.ActivityUserRoutes(user, db)

	// ========== ADMIN ==========
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("the admin panel"),
			constants.AdminOnly...,
		),
	)
	eventRoute.EventAdminRoutes(admin, db)
	clubRoute.ClubAdminRoutes(admin, db)
	notifRoute.NotificationAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}

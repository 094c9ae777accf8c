package route

import (
	"campushub_backend/internals/features/users/auth/controller"
	"campushub_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public endpoints plus the rate limiters that guard them.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)
	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	auth.Post("/refresh-token", authCtrl.RefreshToken)
	auth.Post("/logout", authCtrl.Logout)
}

// Endpoints that require a valid access token.
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)
	auth := api.Group("/auth")
	auth.Get("/me", authCtrl.Me)
	auth.Patch("/change-password", authCtrl.ChangePassword)
}

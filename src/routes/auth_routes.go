package routes

import (
	"Backend-VolunteerHub/src/controllers"
	"Backend-VolunteerHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนดเส้นทางสำหรับ Auth API
func authRoutes(app *fiber.App) {
	authRoutes := app.Group("/auth")
	authRoutes.Post("/register", controllers.RegisterUser)
	authRoutes.Post("/login", controllers.LoginUser)
	authRoutes.Post("/refresh", controllers.RefreshToken)
	authRoutes.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	authRoutes.Get("/me", middleware.AuthJWT, controllers.GetMe)
}

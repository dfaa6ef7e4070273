package routes

import (
	"Backend-VolunteerHub/src/controllers"
	"Backend-VolunteerHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// applicationRoutes กำหนดเส้นทางสำหรับ Application API
func applicationRoutes(app *fiber.App) {
	applicationRoutes := app.Group("/applications", middleware.AuthJWT)
	applicationRoutes.Get("/", controllers.GetApplications)
	applicationRoutes.Get("/me", controllers.GetMyApplications)
	applicationRoutes.Post("/", controllers.CreateApplication)
	applicationRoutes.Delete("/", controllers.DeleteApplication)
}

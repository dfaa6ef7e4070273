package routes

import (
	"Backend-VolunteerHub/src/controllers"
	"Backend-VolunteerHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// notificationRoutes กำหนดเส้นทางสำหรับ Notification API
func notificationRoutes(app *fiber.App) {
	notificationRoutes := app.Group("/notifications", middleware.AuthJWT)
	notificationRoutes.Get("/", controllers.GetNotifications)
	notificationRoutes.Put("/:id/read", controllers.MarkNotificationRead)
}

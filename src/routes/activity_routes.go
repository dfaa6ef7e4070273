package routes

import (
	"Backend-VolunteerHub/src/controllers"
	"Backend-VolunteerHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activity API
func activityRoutes(app *fiber.App) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", controllers.GetAllActivities) // listing สาธารณะ
	// counts ต้องมาก่อน /:id ไม่งั้น fiber จับเป็น id
	activityRoutes.Get("/counts", middleware.AuthJWT, middleware.RequireAdmin, controllers.GetActivityCounts)
	activityRoutes.Get("/:id", controllers.GetActivityByID)
	activityRoutes.Post("/", middleware.AuthJWT, controllers.CreateActivity)
	activityRoutes.Patch("/", middleware.AuthJWT, middleware.RequireAdmin, controllers.ModerateActivity) // approve/reject
	activityRoutes.Delete("/:id", middleware.AuthJWT, middleware.RequireAdmin, controllers.DeleteActivity)
}

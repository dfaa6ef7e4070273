package controllers

import (
	"Backend-VolunteerHub/src/services/notifications"
	"Backend-VolunteerHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetNotifications godoc
// @Summary      Get the caller's notification feed
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /notifications [get]
// @Security     BearerAuth
func GetNotifications(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	data, err := notifications.GetNotificationsByUser(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

// MarkNotificationRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Param        id   path  string  true  "Notification ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /notifications/{id}/read [put]
// @Security     BearerAuth
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := notifications.MarkRead(notificationID, userID); err != nil {
		if err == notifications.ErrNotificationNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Notification not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification marked as read"})
}

package utils

import (
	"Backend-VolunteerHub/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleValidationError ส่ง 400 พร้อมรายการ error รายฟิลด์
func HandleValidationError(c *fiber.Ctx, fields []models.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: "Validation failed",
		Errors:  fields,
	})
}

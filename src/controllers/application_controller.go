package controllers

import (
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/activities"
	"Backend-VolunteerHub/src/services/applications"
	"Backend-VolunteerHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func currentUserID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(raw)
}

// GetApplications godoc
// @Summary      List applicants of an activity
// @Tags         applications
// @Produce      json
// @Param        activityId  query  string  true  "Activity ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /applications [get]
// @Security     BearerAuth
func GetApplications(c *fiber.Ctx) error {
	raw := c.Query("activityId")
	if raw == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "activityId query parameter is required")
	}

	activityID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid activityId format")
	}

	applicants, err := applications.GetApplicantsByActivity(activityID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch applicants")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": applicants})
}

// GetMyApplications godoc
// @Summary      List activities the caller applied to
// @Tags         applications
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /applications/me [get]
// @Security     BearerAuth
func GetMyApplications(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	data, err := applications.GetApplicationsByUser(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

// CreateApplication godoc
// @Summary      Apply to an approved activity
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body body models.ApplicationRequest true "Activity to apply to"
// @Success      201  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications [post]
// @Security     BearerAuth
func CreateApplication(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	var request models.ApplicationRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	activityID, err := primitive.ObjectIDFromHex(request.ActivityID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid activityId format")
	}

	application, err := applications.ApplyToActivity(activityID, userID)
	if err != nil {
		switch err {
		case activities.ErrActivityNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
		case applications.ErrNotApproved:
			return utils.HandleError(c, fiber.StatusBadRequest, "Activity is not open for applications")
		case applications.ErrCapacityExceeded:
			return utils.HandleError(c, fiber.StatusBadRequest, "Activity is already full")
		case applications.ErrDuplicateApplication:
			return utils.HandleError(c, fiber.StatusBadRequest, "You have already applied to this activity")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to apply")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Application submitted successfully",
		"data":    application,
	})
}

// DeleteApplication godoc
// @Summary      Withdraw the caller's application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body body models.ApplicationRequest true "Activity to withdraw from"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications [delete]
// @Security     BearerAuth
func DeleteApplication(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	var request models.ApplicationRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	activityID, err := primitive.ObjectIDFromHex(request.ActivityID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid activityId format")
	}

	if err := applications.WithdrawApplication(activityID, userID); err != nil {
		if err == applications.ErrApplicationNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Application not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to withdraw")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Application withdrawn successfully"})
}

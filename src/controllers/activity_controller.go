package controllers

import (
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/activities"
	"Backend-VolunteerHub/src/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// callerClaims อ่าน JWT จาก header ถ้ามี สำหรับ route สาธารณะที่มองเห็นต่างกันตาม role
func callerClaims(c *fiber.Ctx) *utils.JWTClaims {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}
	return claims
}

// canSeeUnapproved เฉพาะ admin หรือ organizer เจ้าของกิจกรรมเท่านั้น
func canSeeUnapproved(claims *utils.JWTClaims, organizerID string) bool {
	if claims == nil {
		return false
	}
	return claims.Role == models.RoleAdmin || claims.UserID == organizerID
}

// GetAllActivities godoc
// @Summary      Get activities with filters and pagination
// @Description  Public listing shows approved activities only. Pending/rejected require the organizer or an admin.
// @Tags         activities
// @Produce      json
// @Param        page        query  int     false  "Page number" default(1)
// @Param        limit       query  int     false  "Items per page" default(6)
// @Param        search      query  string  false  "Substring match on the fetched page"
// @Param        category    query  string  false  "Category filter, empty or all = no filter"
// @Param        status      query  string  false  "Status filter" default(approved)
// @Param        organizerId query  string  false  "Filter by organizer"
// @Param        dateFilter  query  string  false  "all/today/tomorrow/this-week/next-week/this-month/next-month/upcoming/past"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities [get]
func GetAllActivities(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)

	category := c.Query("category")
	status := c.Query("status", models.StatusApproved)
	dateFilter := c.Query("dateFilter", "all")
	if !activities.IsValidDateFilter(dateFilter) {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid dateFilter")
	}

	var organizerID *primitive.ObjectID
	if raw := c.Query("organizerId"); raw != "" {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid organizerId format")
		}
		organizerID = &oid
	}

	// pending/rejected ดูได้เฉพาะ organizer เจ้าของหรือ admin
	if status != models.StatusApproved {
		claims := callerClaims(c)
		ownOnly := organizerID != nil && claims != nil && claims.UserID == organizerID.Hex()
		if claims == nil || (claims.Role != models.RoleAdmin && !ownOnly) {
			return utils.HandleError(c, fiber.StatusForbidden, "Not allowed to view unapproved activities")
		}
	}

	data, total, totalPages, err := activities.GetAllActivities(params, category, status, organizerID, dateFilter)
	if err != nil {
		// listing ต้องไม่พังทั้งหน้าเพราะ backend ล่ม ส่งผลว่างแทน error
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": []models.Activity{},
			"meta": fiber.Map{
				"page":       params.Page,
				"limit":      params.Limit,
				"total":      0,
				"totalPages": 1,
			},
		})
	}

	// ขอหน้าที่เกินไปถือว่าไม่พบ ไม่ clamp เงียบๆ
	// totalPages อย่างน้อย 1 เสมอ ชุดว่างจึงมีแค่หน้า 1
	if params.Page > totalPages {
		return utils.HandleError(c, fiber.StatusNotFound, "Page not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": data,
		"meta": fiber.Map{
			"page":       params.Page,
			"limit":      params.Limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetActivityCounts godoc
// @Summary      Get activity tallies per moderation status
// @Tags         activities
// @Produce      json
// @Success      200  {object}  models.ActivityCounts
// @Router       /activities/counts [get]
func GetActivityCounts(c *fiber.Ctx) error {
	counts, err := activities.GetActivityCounts()
	if err != nil {
		// หน้า dashboard ใช้ค่า 0 แทน error
		return c.Status(fiber.StatusOK).JSON(models.ActivityCounts{})
	}
	return c.Status(fiber.StatusOK).JSON(counts)
}

// GetActivityByID godoc
// @Summary      Get an activity by ID
// @Tags         activities
// @Produce      json
// @Param        id   path  string  true  "Activity ID"
// @Success      200  {object}  models.Activity
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id} [get]
func GetActivityByID(c *fiber.Ctx) error {
	activity, err := activities.GetActivityByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
	}

	// กิจกรรมที่ยังไม่ approve ไม่เปิดเผยว่ามีอยู่
	if activity.Status != models.StatusApproved && !canSeeUnapproved(callerClaims(c), activity.OrganizerID.Hex()) {
		return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": activity})
}

// CreateActivity godoc
// @Summary      Create a new activity (enters moderation as pending)
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body body models.CreateActivityRequest true "Activity fields"
// @Success      201  {object}  models.Activity
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities [post]
// @Security     BearerAuth
func CreateActivity(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	var request models.CreateActivityRequest
	// แปลง JSON เป็น struct
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	activity, err := activities.CreateActivity(&request, userID)
	if err != nil {
		if ve, ok := activities.AsValidationError(err); ok {
			return utils.HandleValidationError(c, ve.Fields)
		}
		switch err {
		case activities.ErrDateInPast:
			return utils.HandleValidationError(c, []models.FieldError{
				{Field: "date", Message: "must not be in the past"},
			})
		case activities.ErrProfileNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Organizer profile not found")
		case activities.ErrIncompleteProfile:
			return utils.HandleError(c, fiber.StatusBadRequest, "Please complete your profile name before creating an activity")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create activity")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Activity submitted for review",
		"data":    activity,
	})
}

// ModerateActivity godoc
// @Summary      Approve or reject an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body body models.ModerateActivityRequest true "Moderation action"
// @Success      200  {object}  models.Activity
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities [patch]
// @Security     BearerAuth
func ModerateActivity(c *fiber.Ctx) error {
	var request models.ModerateActivityRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	activity, err := activities.ModerateActivity(request.ActivityID, request.Action)
	if err != nil {
		switch err {
		case activities.ErrInvalidAction:
			return utils.HandleError(c, fiber.StatusBadRequest, "Action must be approve or reject")
		case activities.ErrActivityNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to moderate activity")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Activity " + activity.Status,
		"data":    activity,
	})
}

// DeleteActivity godoc
// @Summary      Delete an activity and its applications
// @Tags         activities
// @Produce      json
// @Param        id   path  string  true  "Activity ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id} [delete]
// @Security     BearerAuth
func DeleteActivity(c *fiber.Ctx) error {
	if err := activities.DeleteActivity(c.Params("id")); err != nil {
		if err == activities.ErrActivityNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Activity and related applications deleted successfully"})
}

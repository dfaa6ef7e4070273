package controllers

import (
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/users"
	"Backend-VolunteerHub/src/utils"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const refreshTokenTTL = 7 * 24 * time.Hour

var validate = validator.New()

func issueTokens(c *fiber.Ctx, user *models.User, message string) error {
	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	refreshToken := uuid.NewString()
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store refresh token",
			"code":  "TOKEN_ERROR",
		})
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    86400,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"message": message,
	})
}

// RegisterUser godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RegisterRequest true "Registration fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name, a valid email and a password of 8+ characters are required",
			"code":  "INVALID_FIELDS",
		})
	}

	user, err := users.RegisterUser(&req)
	if err != nil {
		if err == users.ErrEmailTaken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email is already registered",
				"code":  "EMAIL_TAKEN",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Registration failed",
			"code":  "INTERNAL_ERROR",
		})
	}

	return issueTokens(c, user, "Registration successful")
}

// LoginUser godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	user, err := users.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	return issueTokens(c, user, "Login successful")
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	type refreshRequest struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}

	var req refreshRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId and refreshToken are required",
			"code":  "INVALID_REQUEST",
		})
	}

	if !utils.ValidateRefreshToken(req.UserID, req.RefreshToken) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired refresh token",
			"code":  "INVALID_REFRESH_TOKEN",
		})
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user identity",
			"code":  "INVALID_REQUEST",
		})
	}

	user, err := users.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
			"code":  "USER_NOT_FOUND",
		})
	}

	return issueTokens(c, user, "Token refreshed")
}

// GetMe godoc
// @Summary      Get the caller's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func GetMe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}

	user, err := users.GetUserByID(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": user})
}

// LogoutUser godoc
// @Summary      Log out and revoke the refresh token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.SuccessResponse
// @Router       /auth/logout [post]
// @Security     BearerAuth
func LogoutUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not authenticated",
			"code":  "NOT_AUTHENTICATED",
		})
	}

	if err := utils.RevokeRefreshToken(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Logout failed",
			"code":  "INTERNAL_ERROR",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Logout successful",
		"success": true,
	})
}

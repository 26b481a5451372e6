package controllers

import (
	"time"

	"personal-crm-backend/config"
	"personal-crm-backend/middleware"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
)

func (ac *AuthController) LoginController(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required", "VALIDATION_ERROR")
	}

	user, err := ac.UserRepo.GetUserByEmail(req.Email)
	if err != nil {
		// Same response as a bad password so emails can't be probed.
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials", "INVALID_CREDENTIALS")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials", "INVALID_CREDENTIALS")
	}

	accessToken, err := ac.TokenMaker.CreateToken(user.Email, accessTokenDuration)
	if err != nil {
		config.Logger.Error("Could not generate access token", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED")
	}

	refreshToken, err := ac.TokenMaker.CreateToken(user.Email, refreshTokenDuration)
	if err != nil {
		config.Logger.Error("Could not generate refresh token", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED")
	}

	if err := ac.RedisClient.Set(ac.Ctx, "refresh_token:"+refreshToken, user.ID.String(), refreshTokenDuration).Err(); err != nil {
		config.Logger.Error("Error storing refresh token in Redis", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED")
	}

	if err := ac.UserRepo.TouchLastLogin(user.ID); err != nil {
		config.Logger.Warn("Failed to update last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	middleware.SetAuthCookies(c, accessToken, refreshToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user": user,
	})
}

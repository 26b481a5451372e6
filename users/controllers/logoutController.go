package controllers

import (
	"personal-crm-backend/config"
	"personal-crm-backend/middleware"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ac *AuthController) LogoutController(c *fiber.Ctx) error {
	if refreshToken := c.Cookies("refresh_token"); refreshToken != "" {
		if err := ac.RedisClient.Del(ac.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting refresh token on logout", zap.Error(err))
		}
	}

	middleware.ClearAuthCookies(c)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"loggedOut": true})
}

package middleware

import (
	"time"

	"personal-crm-backend/config"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// ProtectedRoute verifies the access-token cookie, falling back to the
// single-use refresh token when the access token is missing or stale.
func ProtectedRoute(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Cookies("access_token")
		refreshToken := c.Cookies("refresh_token")

		if accessToken != "" {
			payload, err := ctx.PasetoMaker.VerifyToken(accessToken)
			if err == nil {
				c.Locals("user", payload)
				return c.Next()
			}
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
		}

		if refreshToken == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "UNAUTHORIZED")
		}

		refreshPayload, err := ctx.PasetoMaker.VerifyToken(refreshToken)
		if err != nil {
			config.Logger.Error("Refresh token verification failed", zap.Error(err))
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session expired or invalid. Please log in again.", "UNAUTHORIZED")
		}

		// The refresh token is single-use: it must still exist in Redis.
		userID, err := ctx.RedisClient.Get(ctx.Ctx, "refresh_token:"+refreshToken).Result()
		if err == redis.Nil {
			config.Logger.Warn("Refresh token not found in Redis",
				zap.String("payload_id", refreshPayload.ID.String()),
				zap.String("email", refreshPayload.Email),
			)
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Session invalid. Please log in again.", "UNAUTHORIZED")
		} else if err != nil {
			config.Logger.Error("Error accessing Redis for refresh token validation",
				zap.String("email", refreshPayload.Email),
				zap.Error(err),
			)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An internal server error occurred.", "INTERNAL_ERROR")
		}

		if err := ctx.RedisClient.Del(ctx.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting old refresh token from Redis",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}

		newAccessToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Email, accessTokenTTL)
		if err != nil {
			config.Logger.Error("Could not generate new access token", zap.Error(err))
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An internal server error occurred.", "INTERNAL_ERROR")
		}

		newRefreshToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Email, refreshTokenTTL)
		if err != nil {
			config.Logger.Error("Could not generate new refresh token", zap.Error(err))
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An internal server error occurred.", "INTERNAL_ERROR")
		}

		if err := ctx.RedisClient.Set(ctx.Ctx, "refresh_token:"+newRefreshToken, userID, refreshTokenTTL).Err(); err != nil {
			config.Logger.Error("Error storing new refresh token in Redis", zap.Error(err))
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An internal server error occurred.", "INTERNAL_ERROR")
		}

		SetAuthCookies(c, newAccessToken, newRefreshToken)

		c.Locals("user", refreshPayload)
		return c.Next()
	}
}

// SetAuthCookies writes the access and refresh token cookies.
func SetAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   false, // TODO: set to true once served over HTTPS
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   false, // TODO: set to true once served over HTTPS
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearAuthCookies expires both auth cookies (logout).
func ClearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
}

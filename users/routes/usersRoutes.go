package router

import (
	"context"
	"time"

	"personal-crm-backend/middleware"
	"personal-crm-backend/token"
	"personal-crm-backend/users/controllers"
	"personal-crm-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func InitRoutes(
	app *fiber.App,
	userRepo repositories.UserRepository,
	ctx context.Context,
	redisClient *redis.Client,
	tokenMaker token.Maker,
) {
	authController := &controllers.AuthController{
		UserRepo:    userRepo,
		TokenMaker:  tokenMaker,
		RedisClient: redisClient,
		Ctx:         ctx,
	}

	// Credential endpoints are public but throttled.
	authRoutes := app.Group("/api/auth", middleware.AuthRateLimit(rate.Every(time.Second), 5))
	{
		authRoutes.Post("/register", authController.RegisterController)
		authRoutes.Post("/login", authController.LoginController)
		authRoutes.Post("/logout", authController.LogoutController)
	}
}

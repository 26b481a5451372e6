package controllers

import (
	"context"
	"strings"

	"personal-crm-backend/config"
	"personal-crm-backend/db/models"
	"personal-crm-backend/token"
	"personal-crm-backend/users/repositories"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	UserRepo    repositories.UserRepository
	TokenMaker  token.Maker
	RedisClient *redis.Client
	Ctx         context.Context
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RegisterController creates the owner account. The CRM is single-tenant:
// once an account exists, registration is closed.
func (ac *AuthController) RegisterController(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "firstName, lastName and email are required", "VALIDATION_ERROR")
	}
	if len(req.Password) < 8 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at least 8 characters", "VALIDATION_ERROR")
	}

	count, err := ac.UserRepo.CountUsers()
	if err != nil {
		config.Logger.Error("Failed to count users", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed", "REGISTER_FAILED")
	}
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "An owner account already exists", "REGISTRATION_CLOSED")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.Logger.Error("Failed to hash password", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed", "REGISTER_FAILED")
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
	}
	created, err := ac.UserRepo.CreateUser(user)
	if err != nil {
		config.Logger.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed", "REGISTER_FAILED")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

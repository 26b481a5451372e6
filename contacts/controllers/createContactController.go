package controllers

import (
	"personal-crm-backend/config"
	"personal-crm-backend/contacts/repositories"
	"personal-crm-backend/contacts/services"
	"personal-crm-backend/db/models"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ContactController struct {
	ContactRepo repositories.ContactRepository
	DB          *gorm.DB
}

func (cc *ContactController) CreateContactController(c *fiber.Ctx) error {
	var contact models.Contact
	if err := c.BodyParser(&contact); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if err := services.ValidateContact(&contact); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	created, err := cc.ContactRepo.CreateContact(&contact)
	if err != nil {
		config.Logger.Error("Failed to create contact", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create contact", "CREATE_FAILED")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

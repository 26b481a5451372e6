package controllers

import (
	"personal-crm-backend/config"
	"personal-crm-backend/contacts/services"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (cc *ContactController) UpdateContactController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact id", "INVALID_ID")
	}

	existing, err := cc.ContactRepo.GetContactByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "NOT_FOUND")
	}

	// Parse the patch over the loaded record so omitted fields keep
	// their stored values.
	if err := c.BodyParser(existing); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	existing.ID = id

	if err := services.ValidateContact(existing); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	}

	updated, err := cc.ContactRepo.UpdateContact(existing)
	if err != nil {
		config.Logger.Error("Failed to update contact", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update contact", "UPDATE_FAILED")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

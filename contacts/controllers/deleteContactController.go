package controllers

import (
	"personal-crm-backend/config"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (cc *ContactController) DeleteContactController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact id", "INVALID_ID")
	}

	if err := cc.ContactRepo.DeleteContact(id); err != nil {
		config.Logger.Error("Failed to delete contact", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "NOT_FOUND")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

package controllers

import (
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (cc *ContactController) RetrieveSingleContactController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact id", "INVALID_ID")
	}

	contact, err := cc.ContactRepo.GetContactByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "NOT_FOUND")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, contact)
}

package controllers

import (
	"personal-crm-backend/config"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (cc *ContactController) AssignTagController(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact id", "INVALID_ID")
	}
	tagID, err := uuid.Parse(c.Params("tagId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tag id", "INVALID_ID")
	}

	if _, err := cc.ContactRepo.GetContactByID(contactID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "NOT_FOUND")
	}

	if err := cc.ContactRepo.AddTag(contactID, tagID); err != nil {
		config.Logger.Error("Failed to assign tag",
			zap.String("contact_id", contactID.String()),
			zap.String("tag_id", tagID.String()),
			zap.Error(err),
		)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to assign tag", "TAG_ASSIGN_FAILED")
	}

	contact, err := cc.ContactRepo.GetContactByID(contactID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reload contact", "FETCH_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, contact)
}

func (cc *ContactController) RemoveTagController(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid contact id", "INVALID_ID")
	}
	tagID, err := uuid.Parse(c.Params("tagId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tag id", "INVALID_ID")
	}

	if err := cc.ContactRepo.RemoveTag(contactID, tagID); err != nil {
		config.Logger.Error("Failed to remove tag",
			zap.String("contact_id", contactID.String()),
			zap.String("tag_id", tagID.String()),
			zap.Error(err),
		)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove tag", "TAG_REMOVE_FAILED")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"removed": tagID})
}

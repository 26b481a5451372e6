package controllers

import (
	"personal-crm-backend/config"
	"personal-crm-backend/db/models"
	"personal-crm-backend/interactions/repositories"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InteractionController struct {
	InteractionRepo repositories.InteractionRepository
}

func validateInteraction(interaction *models.Interaction) (string, bool) {
	if !models.ValidInteractionType(interaction.Type) {
		return "type must be one of CALL, MEETING, EMAIL, TEXT, COFFEE, LUNCH, EVENT, OTHER", false
	}
	if interaction.Date.IsZero() {
		return "date is required", false
	}
	if interaction.ContactID == uuid.Nil {
		return "contactId is required", false
	}
	return "", true
}

func (ic *InteractionController) CreateInteractionController(c *fiber.Ctx) error {
	var interaction models.Interaction
	if err := c.BodyParser(&interaction); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if msg, ok := validateInteraction(&interaction); !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, "VALIDATION_ERROR")
	}

	created, err := ic.InteractionRepo.CreateInteraction(&interaction)
	if err != nil {
		config.Logger.Error("Failed to create interaction", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create interaction", "CREATE_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func (ic *InteractionController) GetInteractionsController(c *fiber.Ctx) error {
	contactID := utils.StringToUUIDPtr(c.Query("contact_id"))
	interactionType := c.Query("type")

	interactions, err := ic.InteractionRepo.GetInteractions(contactID, interactionType)
	if err != nil {
		config.Logger.Error("Failed to fetch interactions", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch interactions", "FETCH_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, interactions)
}

func (ic *InteractionController) RetrieveSingleInteractionController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid interaction id", "INVALID_ID")
	}

	interaction, err := ic.InteractionRepo.GetInteractionByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Interaction not found", "NOT_FOUND")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, interaction)
}

func (ic *InteractionController) UpdateInteractionController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid interaction id", "INVALID_ID")
	}

	existing, err := ic.InteractionRepo.GetInteractionByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Interaction not found", "NOT_FOUND")
	}

	if err := c.BodyParser(existing); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	existing.ID = id

	if msg, ok := validateInteraction(existing); !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, "VALIDATION_ERROR")
	}

	updated, err := ic.InteractionRepo.UpdateInteraction(existing)
	if err != nil {
		config.Logger.Error("Failed to update interaction", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update interaction", "UPDATE_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func (ic *InteractionController) DeleteInteractionController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid interaction id", "INVALID_ID")
	}

	if err := ic.InteractionRepo.DeleteInteraction(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Interaction not found", "NOT_FOUND")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

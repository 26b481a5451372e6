package controllers

import (
	"strings"

	"personal-crm-backend/config"
	"personal-crm-backend/db/models"
	"personal-crm-backend/tags/repositories"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TagController struct {
	TagRepo repositories.TagRepository
}

func (tc *TagController) CreateTagController(c *fiber.Ctx) error {
	var tag models.Tag
	if err := c.BodyParser(&tag); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if strings.TrimSpace(tag.Name) == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tag name is required", "VALIDATION_ERROR")
	}

	created, err := tc.TagRepo.CreateTag(&tag)
	if err != nil {
		config.Logger.Error("Failed to create tag", zap.String("name", tag.Name), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusConflict, "Tag already exists or could not be created", "CREATE_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func (tc *TagController) GetAllTagsController(c *fiber.Ctx) error {
	tags, err := tc.TagRepo.GetAllTags()
	if err != nil {
		config.Logger.Error("Failed to fetch tags", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tags", "FETCH_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tags)
}

func (tc *TagController) DeleteTagController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tag id", "INVALID_ID")
	}

	if err := tc.TagRepo.DeleteTag(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Tag not found", "NOT_FOUND")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

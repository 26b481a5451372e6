package controllers

import (
	"strings"

	"personal-crm-backend/config"
	"personal-crm-backend/db/models"
	"personal-crm-backend/notes/repositories"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NoteController struct {
	NoteRepo repositories.NoteRepository
}

func (nc *NoteController) CreateNoteController(c *fiber.Ctx) error {
	var note models.Note
	if err := c.BodyParser(&note); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	note.Content = strings.TrimSpace(note.Content)
	if note.Content == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Note content is required", "VALIDATION_ERROR")
	}
	if note.ContactID == uuid.Nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "contactId is required", "VALIDATION_ERROR")
	}

	created, err := nc.NoteRepo.CreateNote(&note)
	if err != nil {
		config.Logger.Error("Failed to create note", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create note", "CREATE_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func (nc *NoteController) GetNotesController(c *fiber.Ctx) error {
	contactID := utils.StringToUUIDPtr(c.Query("contact_id"))

	notes, err := nc.NoteRepo.GetNotes(contactID)
	if err != nil {
		config.Logger.Error("Failed to fetch notes", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notes", "FETCH_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, notes)
}

func (nc *NoteController) UpdateNoteController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid note id", "INVALID_ID")
	}

	existing, err := nc.NoteRepo.GetNoteByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Note not found", "NOT_FOUND")
	}

	if err := c.BodyParser(existing); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	existing.ID = id

	existing.Content = strings.TrimSpace(existing.Content)
	if existing.Content == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Note content is required", "VALIDATION_ERROR")
	}

	updated, err := nc.NoteRepo.UpdateNote(existing)
	if err != nil {
		config.Logger.Error("Failed to update note", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update note", "UPDATE_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func (nc *NoteController) DeleteNoteController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid note id", "INVALID_ID")
	}

	if err := nc.NoteRepo.DeleteNote(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Note not found", "NOT_FOUND")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

package controllers

import (
	"strings"

	"personal-crm-backend/config"
	"personal-crm-backend/db/models"
	"personal-crm-backend/reminders/repositories"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderController struct {
	ReminderRepo repositories.ReminderRepository
}

func validateReminder(reminder *models.Reminder) (string, bool) {
	reminder.Title = strings.TrimSpace(reminder.Title)
	if reminder.Title == "" {
		return "title is required", false
	}
	if reminder.DueDate.IsZero() {
		return "dueDate is required", false
	}
	if reminder.ContactID == uuid.Nil {
		return "contactId is required", false
	}
	return "", true
}

func (rc *ReminderController) CreateReminderController(c *fiber.Ctx) error {
	var reminder models.Reminder
	if err := c.BodyParser(&reminder); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if msg, ok := validateReminder(&reminder); !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, "VALIDATION_ERROR")
	}

	created, err := rc.ReminderRepo.CreateReminder(&reminder)
	if err != nil {
		config.Logger.Error("Failed to create reminder", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create reminder", "CREATE_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func (rc *ReminderController) GetRemindersController(c *fiber.Ctx) error {
	contactID := utils.StringToUUIDPtr(c.Query("contact_id"))
	status := c.Query("status")

	switch status {
	case "", "upcoming", "overdue", "completed":
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "status must be upcoming, overdue or completed", "INVALID_STATUS")
	}

	reminders, err := rc.ReminderRepo.GetReminders(contactID, status)
	if err != nil {
		config.Logger.Error("Failed to fetch reminders", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reminders", "FETCH_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reminders)
}

func (rc *ReminderController) UpdateReminderController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid reminder id", "INVALID_ID")
	}

	existing, err := rc.ReminderRepo.GetReminderByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reminder not found", "NOT_FOUND")
	}

	if err := c.BodyParser(existing); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	existing.ID = id

	if msg, ok := validateReminder(existing); !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, "VALIDATION_ERROR")
	}

	updated, err := rc.ReminderRepo.UpdateReminder(existing)
	if err != nil {
		config.Logger.Error("Failed to update reminder", zap.String("id", id.String()), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update reminder", "UPDATE_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func (rc *ReminderController) CompleteReminderController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid reminder id", "INVALID_ID")
	}

	reminder, err := rc.ReminderRepo.SetCompleted(id, true)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reminder not found", "NOT_FOUND")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reminder)
}

func (rc *ReminderController) DeleteReminderController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid reminder id", "INVALID_ID")
	}

	if err := rc.ReminderRepo.DeleteReminder(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reminder not found", "NOT_FOUND")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

package controllers

import (
	"fmt"
	"time"

	"personal-crm-backend/config"
	"personal-crm-backend/contacts/services"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (cc *ContactController) ExportContactsController(c *fiber.Ctx) error {
	contacts, err := cc.ContactRepo.GetAllContacts()
	if err != nil {
		config.Logger.Error("Failed to load contacts for export", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export contacts", "EXPORT_FAILED")
	}

	buf, err := services.ExportContactsXLSX(contacts)
	if err != nil {
		config.Logger.Error("Failed to build contacts workbook", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export contacts", "EXPORT_FAILED")
	}

	filename := fmt.Sprintf("contacts-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

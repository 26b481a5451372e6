package controllers

import (
	"strings"

	"personal-crm-backend/config"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (cc *ContactController) GetFilteredContactsController(c *fiber.Ctx) error {
	pageSize := c.QueryInt("page_size", 20)
	if pageSize <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page_size parameter", "INVALID_PAGINATION")
	}

	page := c.QueryInt("page", 1)
	if page <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid page parameter", "INVALID_PAGINATION")
	}

	cleanQueryParam := func(param string) string {
		param = strings.TrimSpace(param)
		if param == "" || strings.ToLower(param) == "null" {
			return ""
		}
		return param
	}

	filters := make(map[string]string)
	for _, key := range []string{"name", "company", "email", "tag", "start_date", "end_date"} {
		if value := cleanQueryParam(c.Query(key)); value != "" {
			filters[key] = value
		}
	}

	offset := (page - 1) * pageSize

	contacts, total, err := cc.ContactRepo.GetFilteredContacts(pageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch paginated contacts", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch contacts", "FETCH_FAILED")
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"contacts": contacts,
		"meta": fiber.Map{
			"current_page": page,
			"page_size":    pageSize,
			"total":        total,
			"total_pages":  totalPages,
		},
	})
}

func (cc *ContactController) GetAllContactsController(c *fiber.Ctx) error {
	contacts, err := cc.ContactRepo.GetAllContacts()
	if err != nil {
		config.Logger.Error("Failed to fetch contacts", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch contacts", "FETCH_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, contacts)
}

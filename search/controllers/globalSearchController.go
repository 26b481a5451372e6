package controllers

import (
	"errors"
	"strconv"

	"personal-crm-backend/config"
	"personal-crm-backend/search/services"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	minLimit = 1
	maxLimit = 50
)

type SearchController struct {
	Service *services.GlobalSearchService
}

func NewSearchController(service *services.GlobalSearchService) *SearchController {
	return &SearchController{Service: service}
}

// GlobalSearchController handles GET /api/search?q=&limit=.
func (sc *SearchController) GlobalSearchController(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Search query is required", "MISSING_QUERY")
	}

	limit := services.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minLimit || parsed > maxLimit {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "limit must be a number between 1 and 50", "INVALID_LIMIT")
		}
		limit = parsed
	}

	response, err := sc.Service.Search(c.Context(), query, limit)
	if err != nil {
		if errors.Is(err, services.ErrQueryTooShort) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Search query must be at least 2 characters", "INVALID_QUERY")
		}
		config.Logger.Error("Global search failed", zap.String("query", query), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to perform search", "SEARCH_ERROR")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

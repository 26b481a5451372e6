package controllers

import (
	"personal-crm-backend/config"
	"personal-crm-backend/dashboard/repositories"
	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardRepo repositories.DashboardRepository
}

func (dc *DashboardController) GetStatsController(c *fiber.Ctx) error {
	stats, err := dc.DashboardRepo.GetStats()
	if err != nil {
		config.Logger.Error("Failed to compute dashboard stats", zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load dashboard stats", "STATS_FAILED")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

package routes

import (
	"personal-crm-backend/dashboard/controllers"
	"personal-crm-backend/dashboard/repositories"
	"personal-crm-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitDashboardRoutes(app *fiber.App, db *gorm.DB, appContext *middleware.AppContext) {
	dashboardController := &controllers.DashboardController{
		DashboardRepo: repositories.NewDashboardRepository(db),
	}

	protected := app.Group("/api", middleware.ProtectedRoute(appContext))
	protected.Get("/dashboard/stats", dashboardController.GetStatsController)
}

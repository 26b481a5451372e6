package routes

import (
	"personal-crm-backend/middleware"
	"personal-crm-backend/search/controllers"
	"personal-crm-backend/search/repositories"
	"personal-crm-backend/search/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitSearchRoutes(app *fiber.App, db *gorm.DB, appContext *middleware.AppContext) {
	searchRepo := repositories.NewSearchRepository(db)
	searchService := services.NewGlobalSearchService(searchRepo)
	searchController := controllers.NewSearchController(searchService)

	api := app.Group("/api", middleware.ProtectedRoute(appContext))
	api.Get("/search", searchController.GlobalSearchController)
}

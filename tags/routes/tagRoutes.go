package routes

import (
	"personal-crm-backend/middleware"
	"personal-crm-backend/tags/controllers"
	"personal-crm-backend/tags/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitTagRoutes(app *fiber.App, db *gorm.DB, appContext *middleware.AppContext) {
	tagController := &controllers.TagController{
		TagRepo: repositories.NewTagRepository(db),
	}

	protected := app.Group("/api", middleware.ProtectedRoute(appContext))

	tagRoutes := protected.Group("/tags")
	{
		tagRoutes.Get("/", tagController.GetAllTagsController)
		tagRoutes.Post("/", tagController.CreateTagController)
		tagRoutes.Delete("/:id", tagController.DeleteTagController)
	}
}

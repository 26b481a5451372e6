package routes

import (
	"personal-crm-backend/interactions/controllers"
	"personal-crm-backend/interactions/repositories"
	"personal-crm-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitInteractionRoutes(app *fiber.App, db *gorm.DB, appContext *middleware.AppContext) {
	interactionController := &controllers.InteractionController{
		InteractionRepo: repositories.NewInteractionRepository(db),
	}

	protected := app.Group("/api", middleware.ProtectedRoute(appContext))

	interactionRoutes := protected.Group("/interactions")
	{
		interactionRoutes.Get("/", interactionController.GetInteractionsController)
		interactionRoutes.Post("/", interactionController.CreateInteractionController)
		interactionRoutes.Get("/:id", interactionController.RetrieveSingleInteractionController)
		interactionRoutes.Patch("/:id", interactionController.UpdateInteractionController)
		interactionRoutes.Delete("/:id", interactionController.DeleteInteractionController)
	}
}

package routes

import (
	"personal-crm-backend/contacts/controllers"
	"personal-crm-backend/contacts/repositories"
	"personal-crm-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitContactRoutes(
	app *fiber.App,
	contactRepo repositories.ContactRepository,
	db *gorm.DB,
	appContext *middleware.AppContext,
) {
	contactController := &controllers.ContactController{
		ContactRepo: contactRepo,
		DB:          db,
	}

	protected := app.Group("/api", middleware.ProtectedRoute(appContext))

	contactRoutes := protected.Group("/contacts")
	{
		// Specific routes first
		contactRoutes.Get("/filtered", contactController.GetFilteredContactsController)
		contactRoutes.Get("/export", contactController.ExportContactsController)

		contactRoutes.Get("/", contactController.GetAllContactsController)
		contactRoutes.Post("/", contactController.CreateContactController)

		contactRoutes.Get("/:id", contactController.RetrieveSingleContactController)
		contactRoutes.Patch("/:id", contactController.UpdateContactController)
		contactRoutes.Delete("/:id", contactController.DeleteContactController)

		contactRoutes.Post("/:id/tags/:tagId", contactController.AssignTagController)
		contactRoutes.Delete("/:id/tags/:tagId", contactController.RemoveTagController)
	}
}

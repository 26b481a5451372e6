package routes

import (
	"personal-crm-backend/middleware"
	"personal-crm-backend/notes/controllers"
	"personal-crm-backend/notes/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitNoteRoutes(app *fiber.App, db *gorm.DB, appContext *middleware.AppContext) {
	noteController := &controllers.NoteController{
		NoteRepo: repositories.NewNoteRepository(db),
	}

	protected := app.Group("/api", middleware.ProtectedRoute(appContext))

	noteRoutes := protected.Group("/notes")
	{
		noteRoutes.Get("/", noteController.GetNotesController)
		noteRoutes.Post("/", noteController.CreateNoteController)
		noteRoutes.Patch("/:id", noteController.UpdateNoteController)
		noteRoutes.Delete("/:id", noteController.DeleteNoteController)
	}
}

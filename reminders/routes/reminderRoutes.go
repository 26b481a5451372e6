package routes

import (
	"personal-crm-backend/middleware"
	"personal-crm-backend/reminders/controllers"
	"personal-crm-backend/reminders/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitReminderRoutes(app *fiber.App, reminderRepo repositories.ReminderRepository, db *gorm.DB, appContext *middleware.AppContext) {
	reminderController := &controllers.ReminderController{
		ReminderRepo: reminderRepo,
	}

	protected := app.Group("/api", middleware.ProtectedRoute(appContext))

	reminderRoutes := protected.Group("/reminders")
	{
		reminderRoutes.Get("/", reminderController.GetRemindersController)
		reminderRoutes.Post("/", reminderController.CreateReminderController)
		reminderRoutes.Patch("/:id/complete", reminderController.CompleteReminderController)
		reminderRoutes.Patch("/:id", reminderController.UpdateReminderController)
		reminderRoutes.Delete("/:id", reminderController.DeleteReminderController)
	}
}

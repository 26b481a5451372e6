package main

import (
	"context"

	"personal-crm-backend/config"
	seeddb "personal-crm-backend/db"
	"personal-crm-backend/internal/jobs"
	"personal-crm-backend/middleware"
	"personal-crm-backend/token"
	"personal-crm-backend/utils"

	// Repositories
	contacts_repositories "personal-crm-backend/contacts/repositories"
	reminders_repositories "personal-crm-backend/reminders/repositories"
	users_repositories "personal-crm-backend/users/repositories"

	// Routes
	contact_routes "personal-crm-backend/contacts/routes"
	dashboard_routes "personal-crm-backend/dashboard/routes"
	interaction_routes "personal-crm-backend/interactions/routes"
	note_routes "personal-crm-backend/notes/routes"
	reminder_routes "personal-crm-backend/reminders/routes"
	search_routes "personal-crm-backend/search/routes"
	tag_routes "personal-crm-backend/tags/routes"
	user_routes "personal-crm-backend/users/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Fatal("Error loading .env file", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnvOr("PORT", "8080")
	ctx := context.Background()

	// Redis backs both refresh-token sessions and the asynq queue.
	redisClient := config.InitRedisServer(ctx)
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     config.GetEnvOr("REDIS_ADDRESS", "localhost:6379"),
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	// Initialize the mailer
	utils.InitializeMailer()

	// Seed the starter tag set
	if err := seeddb.SeedDefaultTags(db); err != nil {
		config.Logger.Error("Tag seeding failed", zap.Error(err))
	}

	// Repositories
	contactRepo := contacts_repositories.NewContactRepository(db)
	reminderRepo := reminders_repositories.NewReminderRepository(db)
	userRepo := users_repositories.NewUserRepository(db)

	appContext := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Routes
	user_routes.InitRoutes(app, userRepo, ctx, redisClient, tokenMaker)
	contact_routes.InitContactRoutes(app, contactRepo, db, appContext)
	note_routes.InitNoteRoutes(app, db, appContext)
	interaction_routes.InitInteractionRoutes(app, db, appContext)
	reminder_routes.InitReminderRoutes(app, reminderRepo, db, appContext)
	tag_routes.InitTagRoutes(app, db, appContext)
	search_routes.InitSearchRoutes(app, db, appContext)
	dashboard_routes.InitDashboardRoutes(app, db, appContext)

	// Background reminder digest: cron enqueues, asynq worker delivers.
	digestScheduler := jobs.StartReminderDigestScheduler(asynqClient)
	defer digestScheduler.Stop()

	go jobs.RunWorker(asynqRedisOpt, &jobs.ReminderDigestProcessor{
		ReminderRepo: reminderRepo,
		UserRepo:     userRepo,
	})

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}

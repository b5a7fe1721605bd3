package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/dashboard"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/fines"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/finetypes"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/leaderboard"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/players"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/public"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/rules"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/scheduler"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/upload"
	"github.com/karstenbb/kaupanger-botsystem/app/services"
)

func main() {
	// Initialize configuration and database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Sync the fine type catalog and make sure the admin accounts exist
	store := database.NewStore(config.GetDB())
	if err := services.ReconcileFineTypes(store); err != nil {
		log.Fatal("Failed to reconcile fine types:", err)
	}
	if err := services.EnsureAdmins(store, services.DefaultAdmins); err != nil {
		log.Fatal("Failed to ensure admin accounts:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup player routes
	players.SetupPlayerRoutes(app)

	// Setup fine routes
	fines.SetupFineRoutes(app)

	// Setup fine type routes
	finetypes.SetupFineTypeRoutes(app)

	// Setup leaderboard routes
	leaderboard.SetupLeaderboardRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup public routes
	public.SetupPublicRoutes(app)

	// Setup rules routes
	rules.SetupRulesRoutes(app)

	// Setup scheduler trigger routes
	scheduler.SetupSchedulerRoutes(app)

	// Setup upload routes
	upload.SetupUploadRoutes(app)

	// Uploaded profile images
	app.Static("/uploads", config.AppConfig.UploadDir)

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

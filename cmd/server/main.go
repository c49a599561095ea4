package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus-portal/internal/adapters/http/middleware"
	"campus-portal/internal/adapters/http/routes"
	"campus-portal/internal/adapters/persistence/models"
	"campus-portal/internal/adapters/persistence/repositories"
	"campus-portal/internal/config"
	"campus-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "campus-portal/docs" // Swagger docs
)

// @title Campus Complaint Portal API
// @version 1.0
// @description Multi-role campus portal: authentication and complaint tracking.

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables and the unique email index if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Start daily complaint backlog report (08:30 daily)
	reportService := services.NewReportService(repositories.NewComplaintRepository(db))
	reportService.Start()
	defer reportService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Campus Complaint Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}

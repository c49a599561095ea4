package routes

import (
	"campus-portal/internal/adapters/http/handlers"
	"campus-portal/internal/adapters/http/middleware"
	"campus-portal/internal/adapters/persistence/repositories"
	"campus-portal/internal/config"
	"campus-portal/internal/core/services"
	"campus-portal/internal/pkg/password"
	"campus-portal/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)

	// Initialize core components
	hasher := password.NewHasher(cfg.Bcrypt.Cost)
	tokens := token.NewService(cfg.JWT.Secret, cfg.JWT.TokenMinutes)

	// Initialize services
	authService := services.NewAuthService(userRepo, hasher, tokens)
	complaintService := services.NewComplaintService(complaintRepo, userRepo)
	dashboardService := services.NewDashboardService(userRepo, complaintRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler()

	// Health & docs
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Auth routes (stricter rate limit)
	auth := api.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Get("/me", middleware.AuthMiddleware(tokens), authHandler.Me)

	// Complaint routes (authenticated)
	complaints := api.Group("/complaints", middleware.AuthMiddleware(tokens))
	complaints.Post("/", complaintHandler.Create)
	complaints.Get("/", complaintHandler.List)

	// Staff dashboard (admin/official only)
	dashboard := api.Group("/dashboard", middleware.AuthMiddleware(tokens), middleware.StaffOnly())
	dashboard.Get("/summary", dashboardHandler.Summary)
}

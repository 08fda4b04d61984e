package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/cstorehq/store-ops-be/internal/core/assistant"
	"github.com/cstorehq/store-ops-be/internal/core/auth"
	"github.com/cstorehq/store-ops-be/internal/core/notify"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/handlers"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/repositories"
	"github.com/cstorehq/store-ops-be/internal/modules/ops/services"
	"github.com/cstorehq/store-ops-be/internal/shared/config"
	"github.com/cstorehq/store-ops-be/internal/shared/database"
	"github.com/cstorehq/store-ops-be/internal/shared/utils"

	_ "github.com/cstorehq/store-ops-be/docs"
)

// @title Store Ops API
// @version 1.0
// @description Retail store operations backend: shift reports, alerts, and the daily stats dashboard
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	utils.InitLogger()

	// Load config
	cfg := config.LoadConfig()
	log.Printf("🚀 Starting store-ops-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories
	storeRepo := repositories.NewStoreRepo(db.GORM)
	shiftRepo := repositories.NewShiftReportRepo(db.GORM)
	alertRepo := repositories.NewAlertRepo(db.GORM)

	// Init notification channel (optional: WhatsApp session must be paired)
	var notifier *notify.Service
	if os.Getenv("NOTIFICATIONS_ENABLED") == "true" {
		sender := notify.NewWhatsAppSender(cfg.WhatsAppStoreURL)
		if err := sender.Connect(); err != nil {
			log.Printf("⚠️ WhatsApp channel unavailable: %v", err)
		} else {
			notifier = notify.NewService(sender)
			defer notifier.Disconnect()
			log.Println("🔔 Alert notifications enabled")
		}
	}

	// Init services
	storeService := services.NewStoreService(storeRepo, cfg.AppBaseURL)
	shiftService := services.NewShiftService(shiftRepo, storeRepo)
	alertService := services.NewAlertService(alertRepo, storeRepo, notifier)
	dashboardService := services.NewDashboardService(shiftRepo, alertRepo)
	assistantService := services.NewAssistantService(
		assistant.NewClient(cfg.OpenAIKey), storeRepo, shiftRepo, alertRepo)

	authService := auth.NewService(db.GORM, cfg.JWTSecret)

	// Init handlers
	authHandler := auth.NewHandler(authService)
	healthHandler := handlers.NewHealthHandler(cfg.Env)
	storeHandler := handlers.NewStoreHandler(storeService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	alertHandler := handlers.NewAlertHandler(alertService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Store Ops API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Public routes
	app.Get("/health", healthHandler.GetHealth)
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/refresh", authHandler.Refresh)

	// Protected routes
	api := app.Group("/", auth.Middleware(authService))

	api.Post("/stores", auth.RequireRole("admin"), storeHandler.CreateStore)
	api.Get("/stores", storeHandler.ListStores)
	api.Get("/stores/:id", storeHandler.GetStore)
	api.Patch("/stores/:id", auth.RequireRole("admin", "manager"), storeHandler.UpdateStore)
	api.Get("/stores/:id/qr", storeHandler.StoreQR)

	api.Post("/stores/:id/shifts", shiftHandler.CreateShiftReport)
	api.Get("/stores/:id/shifts", shiftHandler.ListShiftReports)
	api.Get("/shifts/:id", shiftHandler.GetShiftReport)
	api.Delete("/shifts/:id", auth.RequireRole("admin", "manager"), shiftHandler.DeleteShiftReport)

	api.Post("/stores/:id/alerts", alertHandler.CreateAlert)
	api.Get("/stores/:id/alerts", alertHandler.ListAlerts)
	api.Post("/alerts/:id/resolve", alertHandler.ResolveAlert)

	api.Get("/stores/:id/dashboard", dashboardHandler.GetDashboard)
	api.Post("/stores/:id/assistant", assistantHandler.Chat)

	// Start server
	log.Printf("✅ store-ops-api running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

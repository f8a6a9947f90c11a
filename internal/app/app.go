package app

import (
	"fmt"

	"farmline/internal/config"
	"farmline/internal/database"
	"farmline/internal/db"
	"farmline/internal/handlers"
	"farmline/internal/logger"
	"farmline/internal/middleware"
	"farmline/internal/repositories"
	"farmline/internal/routes"
	"farmline/internal/services"
	"farmline/internal/session"
	"farmline/internal/validator"
	"farmline/internal/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the middleware chain, templates, and all routes.
// Shared with the tests, which run it over an httptest server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.NoCacheMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))
	ginRouter.Use(session.Middleware(cfg.Session.Secret))

	ginRouter.SetHTMLTemplate(web.Templates())

	routes.RegisterRoutes(ginRouter, cfg, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	listingRepo := repositories.NewListingRepository()

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo),
		MarketService:  services.NewMarketService(userRepo, listingRepo),
		ListingService: services.NewListingService(userRepo, listingRepo),
		ProfileService: services.NewProfileService(userRepo),
		StatsService:   services.NewStatsService(userRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		MarketHandler:  handlers.NewMarketHandler(baseHandler, services.MarketService),
		ListingHandler: handlers.NewListingHandler(baseHandler, services.ListingService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, services.ProfileService),
		AdminHandler:   handlers.NewAdminHandler(baseHandler, services.StatsService),
	}
}

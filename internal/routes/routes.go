package routes

import (
	"farmline/internal/config"
	"farmline/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route onto the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, appHandlers *handlers.AppHandlers) {
	appHandlers.AuthHandler.RegisterRoutes(r)
	appHandlers.MarketHandler.RegisterRoutes(r)
	appHandlers.ListingHandler.RegisterRoutes(r)
	appHandlers.ProfileHandler.RegisterRoutes(r)
	appHandlers.AdminHandler.RegisterRoutes(r, cfg)
}

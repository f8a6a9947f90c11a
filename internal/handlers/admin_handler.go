package handlers

import (
	"net/http"

	"farmline/internal/config"
	"farmline/internal/middleware"
	"farmline/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewAdminHandler(base *BaseHandler, statsService services.StatsService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	admin := r.Group("/admin_stats")
	admin.Use(middleware.RequireAdminKey(cfg.Admin.StatsKey))
	{
		admin.GET("", h.Stats)
	}
}

// Stats renders the aggregate user counts as an HTML fragment.
func (h *AdminHandler) Stats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.statsService.Counts(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "stats unavailable")
		return
	}

	c.HTML(http.StatusOK, "admin_stats", gin.H{
		"FarmerCount": stats.FarmerCount,
		"BuyerCount":  stats.BuyerCount,
		"TotalUsers":  stats.TotalUsers,
	})
}

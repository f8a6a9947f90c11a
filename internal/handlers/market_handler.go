package handlers

import (
	"farmline/internal/catalog"
	"farmline/internal/middleware"
	"farmline/internal/services"
	"farmline/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MarketHandler struct {
	*BaseHandler
	marketService services.MarketService
}

func NewMarketHandler(base *BaseHandler, marketService services.MarketService) *MarketHandler {
	return &MarketHandler{
		BaseHandler:   base,
		marketService: marketService,
	}
}

func (h *MarketHandler) RegisterRoutes(r *gin.Engine) {
	market := r.Group("/")
	market.Use(middleware.RequireLogin("Please login to view the market."))
	{
		market.GET("/market", h.Market)
	}

	farmer := r.Group("/farmer")
	farmer.Use(middleware.RequireLogin("Please login to view farmer profiles."))
	{
		farmer.GET("/:id", h.ViewFarmer)
	}
}

// Market renders the browse page. query and category arrive as URL
// parameters and are ANDed when both are present.
func (h *MarketHandler) Market(c *gin.Context) {
	var q dto.MarketQuery
	_ = c.ShouldBindQuery(&q)

	db := h.GetDB(c)

	listings, err := h.marketService.Browse(db, q.Query, q.Category)
	if err != nil {
		h.HandleServiceError(c, err, "/market")
		return
	}

	h.Render(c, "market", gin.H{
		"Listings":       listings,
		"Categories":     catalog.Categories(),
		"ActiveCategory": q.Category,
		"SearchQuery":    q.Query,
	})
}

// ViewFarmer renders a farmer's public profile with their unsold listings.
func (h *MarketHandler) ViewFarmer(c *gin.Context) {
	farmerID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err, "/market")
		return
	}

	db := h.GetDB(c)

	profile, err := h.marketService.FarmerProfile(db, farmerID)
	if err != nil {
		h.HandleServiceError(c, err, "/market")
		return
	}

	h.Render(c, "farmer_public_profile", gin.H{
		"Farmer":   profile.Farmer,
		"Listings": profile.Listings,
	})
}

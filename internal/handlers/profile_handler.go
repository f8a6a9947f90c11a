package handlers

import (
	"net/http"

	"farmline/internal/middleware"
	"farmline/internal/models"
	"farmline/internal/services"
	"farmline/internal/services/dto"
	"farmline/internal/session"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes wires the farmer and buyer profile pages. The two location
// updates live on separate routes but share semantics; only the user type
// gate differs.
func (h *ProfileHandler) RegisterRoutes(r *gin.Engine) {
	farmer := r.Group("/")
	farmer.Use(middleware.RequireUserType(models.UserTypeFarmer, "Access denied."))
	{
		farmer.GET("/profile", h.FarmerProfile)
		farmer.POST("/update_location", h.UpdateFarmerLocation)
	}

	buyer := r.Group("/")
	buyer.Use(middleware.RequireUserType(models.UserTypeBuyer, "Access denied."))
	{
		buyer.GET("/buyer_profile", h.BuyerProfile)
		buyer.POST("/update_buyer_location", h.UpdateBuyerLocation)
	}
}

func (h *ProfileHandler) FarmerProfile(c *gin.Context) {
	ident, _ := session.Current(c)
	db := h.GetDB(c)

	user, err := h.profileService.Get(db, ident.UserID)
	if err != nil {
		h.HandleServiceError(c, err, "/login")
		return
	}

	h.Render(c, "farmer_profile", gin.H{"User": user})
}

func (h *ProfileHandler) UpdateFarmerLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !h.BindAndValidateForm(c, &req, "/profile") {
		return
	}

	ident, _ := session.Current(c)
	db := h.GetDB(c)

	if err := h.profileService.UpdateLocation(db, ident.UserID, req.Latitude, req.Longitude); err != nil {
		h.HandleServiceError(c, err, "/profile")
		return
	}

	h.RedirectWithFlash(c, "/profile", "success", "Your farm location has been updated!")
}

func (h *ProfileHandler) BuyerProfile(c *gin.Context) {
	ident, _ := session.Current(c)
	db := h.GetDB(c)

	user, err := h.profileService.Get(db, ident.UserID)
	if err != nil {
		// A session pointing at a deleted row: force a clean logout.
		c.Redirect(http.StatusFound, "/logout")
		return
	}

	h.Render(c, "buyer_profile", gin.H{"User": user})
}

func (h *ProfileHandler) UpdateBuyerLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !h.BindAndValidateForm(c, &req, "/buyer_profile") {
		return
	}

	ident, _ := session.Current(c)
	db := h.GetDB(c)

	if err := h.profileService.UpdateLocation(db, ident.UserID, req.Latitude, req.Longitude); err != nil {
		h.HandleServiceError(c, err, "/buyer_profile")
		return
	}

	h.RedirectWithFlash(c, "/buyer_profile", "success", "Your primary location has been updated!")
}

package handlers

import (
	"fmt"
	"strconv"

	"farmline/internal/catalog"
	"farmline/internal/middleware"
	"farmline/internal/models"
	"farmline/internal/services"
	"farmline/internal/services/dto"
	"farmline/internal/session"
	"farmline/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(r *gin.Engine) {
	farmer := r.Group("/")
	farmer.Use(middleware.RequireUserType(models.UserTypeFarmer, "Access denied."))
	{
		farmer.GET("/dashboard", h.Dashboard)
		farmer.POST("/toggle_status/:id", h.ToggleStatus)
		farmer.POST("/delete_listing/:id", h.DeleteListing)
	}

	add := r.Group("/add_listing")
	add.Use(middleware.RequireUserType(models.UserTypeFarmer, "You must be a farmer to add a listing."))
	{
		add.GET("", h.ShowAddListing)
		add.POST("", h.AddListing)
	}
}

func (h *ListingHandler) Dashboard(c *gin.Context) {
	ident, _ := session.Current(c)
	db := h.GetDB(c)

	data, err := h.listingService.Dashboard(db, ident.UserID)
	if err != nil {
		h.HandleServiceError(c, err, "/market")
		return
	}

	h.Render(c, "dashboard", gin.H{
		"Listings":    data.Listings,
		"ActiveCount": data.ActiveCount,
		"SoldCount":   data.SoldCount,
		"Earnings":    data.Earnings,
	})
}

func (h *ListingHandler) ShowAddListing(c *gin.Context) {
	ident, _ := session.Current(c)
	db := h.GetDB(c)

	if err := h.listingService.RequireLocation(db, ident.UserID); err != nil {
		h.HandleServiceError(c, err, "/profile")
		return
	}

	h.Render(c, "add_listing", gin.H{
		"Vegetables": catalog.Grouped(),
	})
}

// AddListing turns the per-vegetable form fields into an explicit list of
// (vegetable, quantity, rate) tuples in catalog order and hands them to the
// service. Fields left empty or unparsable arrive as zero and are skipped.
func (h *ListingHandler) AddListing(c *gin.Context) {
	ident, _ := session.Current(c)
	db := h.GetDB(c)

	items := make([]dto.ListingItem, 0)
	for _, name := range catalog.All() {
		items = append(items, dto.ListingItem{
			Vegetable:  name,
			QuantityKg: formFloat(c, "quantity_"+name),
			RatePerKg:  formFloat(c, "rate_"+name),
		})
	}

	added, err := h.listingService.Add(db, ident.UserID, items)
	if err != nil {
		back := "/dashboard"
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeInvalidOperation {
			// Location not set yet: send the farmer to their profile.
			back = "/profile"
		}
		h.HandleServiceError(c, err, back)
		return
	}

	h.RedirectWithFlash(c, "/dashboard", "success", fmt.Sprintf("%d item(s) posted successfully!", added))
}

func (h *ListingHandler) ToggleStatus(c *gin.Context) {
	listingID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err, "/dashboard")
		return
	}

	ident, _ := session.Current(c)
	db := h.GetDB(c)

	if err := h.listingService.ToggleStatus(db, listingID, ident.UserID); err != nil {
		h.HandleServiceError(c, err, "/dashboard")
		return
	}

	h.RedirectWithFlash(c, "/dashboard", "success", "Listing status updated successfully.")
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	listingID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err, "/dashboard")
		return
	}

	ident, _ := session.Current(c)
	db := h.GetDB(c)

	if err := h.listingService.Delete(db, listingID, ident.UserID); err != nil {
		h.HandleServiceError(c, err, "/dashboard")
		return
	}

	h.RedirectWithFlash(c, "/dashboard", "success", "Listing deleted successfully.")
}

func formFloat(c *gin.Context, key string) float64 {
	value, err := strconv.ParseFloat(c.PostForm(key), 64)
	if err != nil {
		return 0
	}
	return value
}

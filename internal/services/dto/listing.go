package dto

import "farmline/internal/models"

// ListingItem is one (vegetable, quantity, rate) tuple from the add-listing
// form. The handler builds the list in catalog order; vegetables the farmer
// left blank arrive with zero values and are skipped by the service.
type ListingItem struct {
	Vegetable  string
	QuantityKg float64
	RatePerKg  float64
}

type DashboardData struct {
	Listings    []models.Listing
	ActiveCount int64
	SoldCount   int64
	// Earnings is the summed quantity*rate of unsold listings: the potential
	// value of current stock, not realized revenue. The name is kept for
	// continuity with the dashboard it replaces.
	Earnings float64
}

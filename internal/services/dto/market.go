package dto

import "farmline/internal/models"

type MarketQuery struct {
	Query    string `form:"query"`
	Category string `form:"category"`
}

type FarmerProfileData struct {
	Farmer   *models.User
	Listings []models.Listing
}

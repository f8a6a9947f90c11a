package services

import (
	"farmline/internal/catalog"
	"farmline/internal/models"
	"farmline/internal/repositories"
	"farmline/internal/services/dto"
	"farmline/pkg/apperrors"

	"gorm.io/gorm"
)

type MarketService interface {
	Browse(db *gorm.DB, query, category string) ([]models.Listing, error)
	FarmerProfile(db *gorm.DB, farmerID uint) (*dto.FarmerProfileData, error)
}

type MarketServiceImpl struct {
	userRepo    repositories.UserRepository
	listingRepo repositories.ListingRepository
}

func NewMarketService(userRepo repositories.UserRepository, listingRepo repositories.ListingRepository) MarketService {
	return &MarketServiceImpl{userRepo: userRepo, listingRepo: listingRepo}
}

// Browse returns market listings filtered by search text and/or catalog
// category. An unknown category filters nothing, matching how the market
// has always treated a stale category link.
func (s *MarketServiceImpl) Browse(db *gorm.DB, query, category string) ([]models.Listing, error) {
	var vegetableNames []string
	if category != "" {
		if names, ok := catalog.Vegetables(category); ok {
			vegetableNames = names
		}
	}

	listings, err := s.listingRepo.Search(db, vegetableNames, query)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}

// FarmerProfile returns a farmer's public profile and their unsold listings,
// newest first.
func (s *MarketServiceImpl) FarmerProfile(db *gorm.DB, farmerID uint) (*dto.FarmerProfileData, error) {
	farmer, err := s.userRepo.FindFarmer(db, farmerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrFarmerNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	listings, err := s.listingRepo.FindActiveByFarmer(db, farmer.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.FarmerProfileData{Farmer: farmer, Listings: listings}, nil
}

package services

import (
	"farmline/internal/catalog"
	"farmline/internal/models"
	"farmline/internal/repositories"
	"farmline/internal/services/dto"
	"farmline/pkg/apperrors"

	"gorm.io/gorm"
)

type ListingService interface {
	Add(db *gorm.DB, farmerID uint, items []dto.ListingItem) (int, error)
	ToggleStatus(db *gorm.DB, listingID, farmerID uint) error
	Delete(db *gorm.DB, listingID, farmerID uint) error
	Dashboard(db *gorm.DB, farmerID uint) (*dto.DashboardData, error)
	RequireLocation(db *gorm.DB, farmerID uint) error
}

type ListingServiceImpl struct {
	userRepo    repositories.UserRepository
	listingRepo repositories.ListingRepository
}

func NewListingService(userRepo repositories.UserRepository, listingRepo repositories.ListingRepository) ListingService {
	return &ListingServiceImpl{userRepo: userRepo, listingRepo: listingRepo}
}

// RequireLocation refuses listing creation for farmers who have not set
// their farm coordinates yet.
func (s *ListingServiceImpl) RequireLocation(db *gorm.DB, farmerID uint) error {
	farmer, err := s.userRepo.FindByID(db, farmerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if !farmer.HasLocation() {
		return apperrors.ErrLocationRequired()
	}
	return nil
}

// Add inserts one listing per catalog vegetable with a strictly positive
// quantity and rate. Items with missing or non-positive values are skipped
// silently; zero inserts is a validation failure.
//
// Concurrent Add calls for the same farmer can interleave. Each insert is
// atomic on its own, so the worst case is extra rows, which matches the
// accepted single-user-editing assumption.
func (s *ListingServiceImpl) Add(db *gorm.DB, farmerID uint, items []dto.ListingItem) (int, error) {
	if err := s.RequireLocation(db, farmerID); err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		if !catalog.IsVegetable(item.Vegetable) {
			continue
		}
		if item.QuantityKg <= 0 || item.RatePerKg <= 0 {
			continue
		}

		listing := &models.Listing{
			FarmerID:      farmerID,
			VegetableName: item.Vegetable,
			QuantityKg:    item.QuantityKg,
			RatePerKg:     item.RatePerKg,
		}
		if err := s.listingRepo.Create(db, listing); err != nil {
			return added, apperrors.InternalError(err)
		}
		added++
	}

	if added == 0 {
		return 0, apperrors.ErrNoItemsAdded()
	}
	return added, nil
}

// ToggleStatus flips the sold flag of a listing the farmer owns. A listing
// that does not exist or belongs to someone else produces the same
// authorization error, revealing nothing about the row.
func (s *ListingServiceImpl) ToggleStatus(db *gorm.DB, listingID, farmerID uint) error {
	listing, err := s.listingRepo.FindOwned(db, listingID, farmerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.NewForbiddenError("You are not authorized to change this listing.")
		}
		return apperrors.InternalError(err)
	}

	if err := s.listingRepo.SetSold(db, listing.ID, !listing.IsSold); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete removes a listing the farmer owns. Same ownership semantics as
// ToggleStatus; the delete is permanent.
func (s *ListingServiceImpl) Delete(db *gorm.DB, listingID, farmerID uint) error {
	listing, err := s.listingRepo.FindOwned(db, listingID, farmerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.NewForbiddenError("You are not authorized to delete this listing.")
		}
		return apperrors.InternalError(err)
	}

	if err := s.listingRepo.Delete(db, listing.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Dashboard assembles the farmer's own listings plus derived counts and the
// unsold stock value.
func (s *ListingServiceImpl) Dashboard(db *gorm.DB, farmerID uint) (*dto.DashboardData, error) {
	listings, err := s.listingRepo.FindByFarmer(db, farmerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activeCount, err := s.listingRepo.CountByFarmer(db, farmerID, false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	soldCount, err := s.listingRepo.CountByFarmer(db, farmerID, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	earnings, err := s.listingRepo.ActiveStockValue(db, farmerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardData{
		Listings:    listings,
		ActiveCount: activeCount,
		SoldCount:   soldCount,
		Earnings:    earnings,
	}, nil
}

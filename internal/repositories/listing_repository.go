package repositories

import (
	"errors"
	"strings"

	"farmline/internal/models"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	Create(db *gorm.DB, listing *models.Listing) error
	FindOwned(db *gorm.DB, id, farmerID uint) (*models.Listing, error)
	Search(db *gorm.DB, vegetableNames []string, query string) ([]models.Listing, error)
	FindByFarmer(db *gorm.DB, farmerID uint) ([]models.Listing, error)
	FindActiveByFarmer(db *gorm.DB, farmerID uint) ([]models.Listing, error)
	SetSold(db *gorm.DB, id uint, sold bool) error
	Delete(db *gorm.DB, id uint) error
	CountByFarmer(db *gorm.DB, farmerID uint, sold bool) (int64, error)
	ActiveStockValue(db *gorm.DB, farmerID uint) (float64, error)
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

func (r *ListingRepositoryImpl) Create(db *gorm.DB, listing *models.Listing) error {
	return db.Create(listing).Error
}

// FindOwned loads a listing only when it belongs to the given farmer. A
// missing row and a non-owned row are indistinguishable to the caller.
func (r *ListingRepositoryImpl) FindOwned(db *gorm.DB, id, farmerID uint) (*models.Listing, error) {
	var listing models.Listing
	err := db.First(&listing, "id = ? AND farmer_id = ?", id, farmerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// Search returns market listings with their owning farmer preloaded. Both
// filters are ANDed when present. Unsold listings come first, newest first
// within each sold-state group. No pagination: the market is small enough
// that the full result set is returned per call.
func (r *ListingRepositoryImpl) Search(db *gorm.DB, vegetableNames []string, query string) ([]models.Listing, error) {
	tx := db.Model(&models.Listing{}).Preload("Farmer")

	if len(vegetableNames) > 0 {
		tx = tx.Where("vegetable_name IN ?", vegetableNames)
	}
	if query != "" {
		tx = tx.Where("LOWER(vegetable_name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var listings []models.Listing
	err := tx.Order("is_sold ASC, id DESC").Find(&listings).Error
	return listings, err
}

func (r *ListingRepositoryImpl) FindByFarmer(db *gorm.DB, farmerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.Where("farmer_id = ?", farmerID).
		Order("is_sold ASC, id DESC").Find(&listings).Error
	return listings, err
}

func (r *ListingRepositoryImpl) FindActiveByFarmer(db *gorm.DB, farmerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.Where("farmer_id = ? AND is_sold = ?", farmerID, false).
		Order("id DESC").Find(&listings).Error
	return listings, err
}

func (r *ListingRepositoryImpl) SetSold(db *gorm.DB, id uint, sold bool) error {
	result := db.Model(&models.Listing{}).Where("id = ?", id).Update("is_sold", sold)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *ListingRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Listing{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *ListingRepositoryImpl) CountByFarmer(db *gorm.DB, farmerID uint, sold bool) (int64, error) {
	var count int64
	err := db.Model(&models.Listing{}).
		Where("farmer_id = ? AND is_sold = ?", farmerID, sold).
		Count(&count).Error
	return count, err
}

// ActiveStockValue sums quantity_kg * rate_per_kg over the farmer's unsold
// listings. Zero when the farmer has no active stock.
func (r *ListingRepositoryImpl) ActiveStockValue(db *gorm.DB, farmerID uint) (float64, error) {
	var total float64
	err := db.Model(&models.Listing{}).
		Select("COALESCE(SUM(quantity_kg * rate_per_kg), 0)").
		Where("farmer_id = ? AND is_sold = ?", farmerID, false).
		Scan(&total).Error
	return total, err
}

package services

import (
	"farmline/internal/models"
	"farmline/internal/repositories"
	"farmline/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	Get(db *gorm.DB, userID uint) (*models.User, error)
	UpdateLocation(db *gorm.DB, userID uint, latitude, longitude float64) error
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo}
}

func (s *ProfileServiceImpl) Get(db *gorm.DB, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateLocation overwrites the stored coordinates unconditionally. No range
// validation is applied; the browser supplies whatever geolocation reported.
func (s *ProfileServiceImpl) UpdateLocation(db *gorm.DB, userID uint, latitude, longitude float64) error {
	if err := s.userRepo.UpdateLocation(db, userID, latitude, longitude); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

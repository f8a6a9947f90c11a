package services

import (
	"farmline/internal/models"
	"farmline/internal/repositories"
	"farmline/internal/services/dto"
	"farmline/pkg/apperrors"

	"gorm.io/gorm"
)

type StatsService interface {
	Counts(db *gorm.DB) (*dto.StatsData, error)
}

type StatsServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewStatsService(userRepo repositories.UserRepository) StatsService {
	return &StatsServiceImpl{userRepo: userRepo}
}

// Counts aggregates registered users by type.
func (s *StatsServiceImpl) Counts(db *gorm.DB) (*dto.StatsData, error) {
	farmers, err := s.userRepo.CountByType(db, models.UserTypeFarmer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	buyers, err := s.userRepo.CountByType(db, models.UserTypeBuyer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StatsData{FarmerCount: farmers, BuyerCount: buyers, TotalUsers: total}, nil
}

package services

import (
	"farmline/internal/auth"
	"farmline/internal/models"
	"farmline/internal/repositories"
	"farmline/internal/services/dto"
	"farmline/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*models.User, error)
	VerifyResetIdentity(db *gorm.DB, mobile, dob string) (uint, error)
	ResetPassword(db *gorm.DB, userID uint, password, confirmPassword string) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register creates a user with a bcrypt-hashed password. A duplicate mobile
// number leaves no row behind.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	userType := models.UserType(req.UserType)
	if !userType.IsValid() {
		return apperrors.ErrInvalidUserType()
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Place:        req.Place,
		DOB:          req.DOB,
		MobileNumber: req.MobileNumber,
		PasswordHash: hash,
		UserType:     userType,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrMobileAlreadyRegistered()
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Login verifies the mobile number and password. An unknown number and a
// wrong password produce the same error so accounts cannot be enumerated.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.FindByMobileNumber(db, req.MobileNumber)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials()
	}

	return user, nil
}

// VerifyResetIdentity matches a user by mobile number and date of birth and
// returns the id to stash as the session reset marker.
func (s *AuthServiceImpl) VerifyResetIdentity(db *gorm.DB, mobile, dob string) (uint, error) {
	user, err := s.userRepo.FindByMobileAndDOB(db, mobile, dob)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return 0, apperrors.ErrInvalidResetIdentity()
		}
		return 0, apperrors.InternalError(err)
	}
	return user.ID, nil
}

// ResetPassword re-hashes and stores the new password for the user carried
// in the reset marker.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, userID uint, password, confirmPassword string) error {
	if password != confirmPassword {
		return apperrors.ErrPasswordsDoNotMatch()
	}
	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(db, userID, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

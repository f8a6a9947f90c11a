package repositories

import (
	"errors"
	"strings"

	"farmline/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByMobileNumber(db *gorm.DB, mobile string) (*models.User, error)
	FindByMobileAndDOB(db *gorm.DB, mobile, dob string) (*models.User, error)
	FindFarmer(db *gorm.DB, id uint) (*models.User, error)
	UpdatePassword(db *gorm.DB, userID uint, passwordHash string) error
	UpdateLocation(db *gorm.DB, userID uint, latitude, longitude float64) error
	CountByType(db *gorm.DB, userType models.UserType) (int64, error)
	CountAll(db *gorm.DB) (int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

// Create inserts a new user. Any uniqueness conflict on mobile_number is
// reported as ErrUserAlreadyExists regardless of the underlying driver, so
// callers never depend on a storage engine's error type.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("mobile_number = ?", user.MobileNumber).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if err := db.Create(user).Error; err != nil {
		if isDuplicateError(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByMobileNumber(db *gorm.DB, mobile string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "mobile_number = ?", mobile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByMobileAndDOB(db *gorm.DB, mobile, dob string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "mobile_number = ? AND dob = ?", mobile, dob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindFarmer looks a user up by id restricted to the farmer type.
func (r *UserRepositoryImpl) FindFarmer(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ? AND user_type = ?", id, models.UserTypeFarmer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdatePassword(db *gorm.DB, userID uint, passwordHash string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateLocation(db *gorm.DB, userID uint, latitude, longitude float64) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CountByType(db *gorm.DB, userType models.UserType) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("user_type = ?", userType).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// isDuplicateError recognizes a unique-constraint violation across the
// supported drivers. gorm translates it for postgres; the sqlite binding
// surfaces the raw constraint message.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// Package testutil provides the shared database and fixture helpers used by
// the package tests. Every test gets its own in-memory sqlite database with
// the real schema migrated.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"farmline/internal/auth"
	"farmline/internal/database"
	"farmline/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database named after the test, so
// parallel tests never share state.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "opening test database")

	require.NoError(t, database.Migrate(db), "migrating test schema")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// An in-memory database disappears with its last connection.
	sqlDB.SetMaxIdleConns(2)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// CreateUser inserts a user with the password hashed for real, so login
// flows work against the fixture.
func CreateUser(t *testing.T, db *gorm.DB, userType models.UserType, name, mobile, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Place:        "Madurai",
		DOB:          "1990-01-01",
		MobileNumber: mobile,
		PasswordHash: hash,
		UserType:     userType,
	}
	require.NoError(t, db.Create(user).Error, "creating fixture user")
	return user
}

// CreateFarmerWithLocation inserts a farmer whose coordinates are already
// set, ready to add listings.
func CreateFarmerWithLocation(t *testing.T, db *gorm.DB, name, mobile string) *models.User {
	t.Helper()

	farmer := CreateUser(t, db, models.UserTypeFarmer, name, mobile, "password123")
	lat, lng := 9.9252, 78.1198
	require.NoError(t, db.Model(farmer).Updates(map[string]interface{}{
		"latitude":  lat,
		"longitude": lng,
	}).Error)
	farmer.Latitude = &lat
	farmer.Longitude = &lng
	return farmer
}

// CreateListing inserts a listing row directly.
func CreateListing(t *testing.T, db *gorm.DB, farmerID uint, vegetable string, quantity, rate float64, sold bool) *models.Listing {
	t.Helper()

	listing := &models.Listing{
		FarmerID:      farmerID,
		VegetableName: vegetable,
		QuantityKg:    quantity,
		RatePerKg:     rate,
		IsSold:        sold,
	}
	require.NoError(t, db.Create(listing).Error, "creating fixture listing")
	return listing
}

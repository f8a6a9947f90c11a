package services

import (
	"testing"

	"farmline/internal/models"
	"farmline/internal/repositories"
	"farmline/internal/testutil"
	"farmline/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMarketService() MarketService {
	return NewMarketService(repositories.NewUserRepository(), repositories.NewListingRepository())
}

func TestMarketService_BrowseSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newMarketService()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9300000001")
	testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)
	testutil.CreateListing(t, db, farmer.ID, "Potato", 10, 15, false)

	listings, err := svc.Browse(db, "Tom", "")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Tomato", listings[0].VegetableName)
	require.NotNil(t, listings[0].Farmer)
	assert.Equal(t, "Raju", listings[0].Farmer.Name)
}

func TestMarketService_BrowseCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newMarketService()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9300000002")
	testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)
	testutil.CreateListing(t, db, farmer.ID, "Potato", 10, 15, false)
	testutil.CreateListing(t, db, farmer.ID, "Spinach", 2, 30, false)

	listings, err := svc.Browse(db, "", "Root Vegetables")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Potato", listings[0].VegetableName)

	// Search and category combine, both must match.
	listings, err = svc.Browse(db, "pot", "Leafy Greens")
	require.NoError(t, err)
	assert.Empty(t, listings)

	// An unknown category filters nothing.
	listings, err = svc.Browse(db, "", "Tubers")
	require.NoError(t, err)
	assert.Len(t, listings, 3)
}

func TestMarketService_FarmerProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newMarketService()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9300000003")
	buyer := testutil.CreateUser(t, db, models.UserTypeBuyer, "Meena", "9300000004", "password123")
	active := testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)
	testutil.CreateListing(t, db, farmer.ID, "Potato", 10, 15, true)

	data, err := svc.FarmerProfile(db, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Raju", data.Farmer.Name)
	// Sold listings stay off the public profile.
	require.Len(t, data.Listings, 1)
	assert.Equal(t, active.ID, data.Listings[0].ID)

	// A buyer id is not a farmer profile.
	_, err = svc.FarmerProfile(db, buyer.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Farmer not found.", appErr.Message)
}

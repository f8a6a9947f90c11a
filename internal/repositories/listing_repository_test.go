package repositories

import (
	"testing"

	"farmline/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRepository_SearchOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewListingRepository()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9100000001")
	oldActive := testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)
	sold := testutil.CreateListing(t, db, farmer.ID, "Potato", 10, 15, true)
	newActive := testutil.CreateListing(t, db, farmer.ID, "Carrot", 3, 40, false)

	listings, err := repo.Search(db, nil, "")
	require.NoError(t, err)
	require.Len(t, listings, 3)

	// Unsold first, newest first within each group.
	assert.Equal(t, newActive.ID, listings[0].ID)
	assert.Equal(t, oldActive.ID, listings[1].ID)
	assert.Equal(t, sold.ID, listings[2].ID)

	// Owning farmer rides along for the market view.
	require.NotNil(t, listings[0].Farmer)
	assert.Equal(t, "Raju", listings[0].Farmer.Name)
}

func TestListingRepository_SearchFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewListingRepository()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9100000002")
	tomato := testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)
	testutil.CreateListing(t, db, farmer.ID, "Potato", 10, 15, false)
	testutil.CreateListing(t, db, farmer.ID, "Spinach", 2, 30, false)

	// Case-insensitive substring search.
	listings, err := repo.Search(db, nil, "tom")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, tomato.ID, listings[0].ID)

	// Name set and query are ANDed.
	listings, err = repo.Search(db, []string{"Tomato", "Potato"}, "tom")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, tomato.ID, listings[0].ID)

	listings, err = repo.Search(db, []string{"Spinach"}, "tom")
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestListingRepository_FindOwned(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewListingRepository()

	owner := testutil.CreateFarmerWithLocation(t, db, "Raju", "9100000003")
	other := testutil.CreateFarmerWithLocation(t, db, "Kumar", "9100000004")
	listing := testutil.CreateListing(t, db, owner.ID, "Tomato", 5, 20, false)

	found, err := repo.FindOwned(db, listing.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, found.ID)

	_, err = repo.FindOwned(db, listing.ID, other.ID)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListingRepository_SetSoldAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewListingRepository()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9100000005")
	listing := testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)

	require.NoError(t, repo.SetSold(db, listing.ID, true))
	reloaded, err := repo.FindOwned(db, listing.ID, farmer.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsSold)

	assert.ErrorIs(t, repo.SetSold(db, 9999, true), ErrListingNotFound)

	require.NoError(t, repo.Delete(db, listing.ID))
	_, err = repo.FindOwned(db, listing.ID, farmer.ID)
	assert.ErrorIs(t, err, ErrListingNotFound)
	assert.ErrorIs(t, repo.Delete(db, listing.ID), ErrListingNotFound)
}

func TestListingRepository_ActiveStockValue(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewListingRepository()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9100000006")
	other := testutil.CreateFarmerWithLocation(t, db, "Kumar", "9100000007")

	testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)   // 100
	testutil.CreateListing(t, db, farmer.ID, "Potato", 10, 15, true)   // sold, excluded
	testutil.CreateListing(t, db, other.ID, "Carrot", 100, 100, false) // other farmer

	total, err := repo.ActiveStockValue(db, farmer.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, total, 1e-9)

	// A farmer with nothing active reports zero, not an error.
	empty := testutil.CreateFarmerWithLocation(t, db, "Velu", "9100000008")
	total, err = repo.ActiveStockValue(db, empty.ID)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestListingRepository_CountByFarmer(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewListingRepository()

	farmer := testutil.CreateFarmerWithLocation(t, db, "Raju", "9100000009")
	testutil.CreateListing(t, db, farmer.ID, "Tomato", 5, 20, false)
	testutil.CreateListing(t, db, farmer.ID, "Potato", 10, 15, false)
	testutil.CreateListing(t, db, farmer.ID, "Carrot", 3, 40, true)

	active, err := repo.CountByFarmer(db, farmer.ID, false)
	require.NoError(t, err)
	sold, err := repo.CountByFarmer(db, farmer.ID, true)
	require.NoError(t, err)

	assert.Equal(t, int64(2), active)
	assert.Equal(t, int64(1), sold)

	activeListings, err := repo.FindActiveByFarmer(db, farmer.ID)
	require.NoError(t, err)
	assert.Len(t, activeListings, 2)
	for _, l := range activeListings {
		assert.False(t, l.IsSold)
	}

	all, err := repo.FindByFarmer(db, farmer.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

package repositories

import (
	"testing"

	"farmline/internal/models"
	"farmline/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicateMobile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	testutil.CreateUser(t, db, models.UserTypeFarmer, "Raju", "9876543210", "password123")

	dup := &models.User{
		Name:         "Someone Else",
		Place:        "Salem",
		DOB:          "1985-05-05",
		MobileNumber: "9876543210",
		PasswordHash: "irrelevant",
		UserType:     models.UserTypeBuyer,
	}
	err := repo.Create(db, dup)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	count, err := repo.CountAll(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_FindByMobileAndDOB(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	created := testutil.CreateUser(t, db, models.UserTypeBuyer, "Meena", "9000000001", "password123")

	found, err := repo.FindByMobileAndDOB(db, "9000000001", "1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByMobileAndDOB(db, "9000000001", "1991-01-01")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_FindFarmerRejectsBuyer(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	buyer := testutil.CreateUser(t, db, models.UserTypeBuyer, "Meena", "9000000002", "password123")
	farmer := testutil.CreateUser(t, db, models.UserTypeFarmer, "Raju", "9000000003", "password123")

	_, err := repo.FindFarmer(db, buyer.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	found, err := repo.FindFarmer(db, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, farmer.ID, found.ID)
}

func TestUserRepository_UpdateLocation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	farmer := testutil.CreateUser(t, db, models.UserTypeFarmer, "Raju", "9000000004", "password123")
	require.False(t, farmer.HasLocation())

	require.NoError(t, repo.UpdateLocation(db, farmer.ID, 9.9252, 78.1198))

	reloaded, err := repo.FindByID(db, farmer.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.HasLocation())
	assert.InDelta(t, 9.9252, *reloaded.Latitude, 1e-9)

	assert.ErrorIs(t, repo.UpdateLocation(db, 9999, 1, 1), ErrUserNotFound)
}

func TestUserRepository_CountByType(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository()

	testutil.CreateUser(t, db, models.UserTypeFarmer, "Raju", "9000000005", "password123")
	testutil.CreateUser(t, db, models.UserTypeFarmer, "Kumar", "9000000006", "password123")
	testutil.CreateUser(t, db, models.UserTypeBuyer, "Meena", "9000000007", "password123")

	farmers, err := repo.CountByType(db, models.UserTypeFarmer)
	require.NoError(t, err)
	buyers, err := repo.CountByType(db, models.UserTypeBuyer)
	require.NoError(t, err)
	total, err := repo.CountAll(db)
	require.NoError(t, err)

	assert.Equal(t, int64(2), farmers)
	assert.Equal(t, int64(1), buyers)
	assert.Equal(t, int64(3), total)
}

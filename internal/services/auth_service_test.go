package services

import (
	"testing"

	"farmline/internal/auth"
	"farmline/internal/models"
	"farmline/internal/repositories"
	"farmline/internal/services/dto"
	"farmline/internal/testutil"
	"farmline/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() AuthService {
	return NewAuthService(repositories.NewUserRepository())
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService()

	req := &dto.RegisterRequest{
		UserType:     "farmer",
		Name:         "Raju",
		Place:        "Madurai",
		DOB:          "1990-01-01",
		MobileNumber: "9876543210",
		Password:     "secret123",
	}
	require.NoError(t, svc.Register(db, req))

	user, err := svc.Login(db, &dto.LoginRequest{MobileNumber: "9876543210", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Raju", user.Name)
	assert.Equal(t, models.UserTypeFarmer, user.UserType)
	// The plaintext password is never stored.
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestAuthService_RegisterDuplicateMobile(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService()

	req := &dto.RegisterRequest{
		UserType:     "farmer",
		Name:         "Raju",
		Place:        "Madurai",
		DOB:          "1990-01-01",
		MobileNumber: "9876543210",
		Password:     "secret123",
	}
	require.NoError(t, svc.Register(db, req))

	again := *req
	again.Name = "Someone Else"
	again.UserType = "buyer"
	err := svc.Register(db, &again)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_RegisterRejectsUnknownType(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService()

	err := svc.Register(db, &dto.RegisterRequest{
		UserType:     "admin",
		Name:         "Raju",
		Place:        "Madurai",
		DOB:          "1990-01-01",
		MobileNumber: "9876543211",
		Password:     "secret123",
	})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestAuthService_LoginWrongCredentials(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService()

	testutil.CreateUser(t, db, models.UserTypeBuyer, "Meena", "9000000001", "secret123")

	// Wrong password and unknown number are indistinguishable.
	for _, req := range []*dto.LoginRequest{
		{MobileNumber: "9000000001", Password: "wrongpass"},
		{MobileNumber: "0000000000", Password: "secret123"},
	} {
		user, err := svc.Login(db, req)
		assert.Nil(t, user)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
		assert.Equal(t, "Invalid mobile number or password. Please try again.", appErr.Message)
	}
}

func TestAuthService_ResetPasswordFlow(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService()

	user := testutil.CreateUser(t, db, models.UserTypeFarmer, "Raju", "9000000002", "oldpass1")

	// Wrong date of birth never yields a reset marker.
	_, err := svc.VerifyResetIdentity(db, "9000000002", "2001-12-31")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	id, err := svc.VerifyResetIdentity(db, "9000000002", "1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	err = svc.ResetPassword(db, id, "newpass1", "different")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Passwords do not match!", appErr.Message)

	require.NoError(t, svc.ResetPassword(db, id, "newpass1", "newpass1"))

	// Old password dead, new one live.
	_, err = svc.Login(db, &dto.LoginRequest{MobileNumber: "9000000002", Password: "oldpass1"})
	assert.Error(t, err)
	logged, err := svc.Login(db, &dto.LoginRequest{MobileNumber: "9000000002", Password: "newpass1"})
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("newpass1", logged.PasswordHash))
}

package validator

import (
	"testing"

	"farmline/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	valid := &dto.RegisterRequest{
		UserType:     "farmer",
		Name:         "Raju",
		Place:        "Madurai",
		DOB:          "1990-01-01",
		MobileNumber: "9876543210",
		Password:     "secret123",
	}
	assert.NoError(t, v.Validate(valid))
}

func TestValidateReportsFormFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		UserType: "farmer",
		Name:     "Raju",
		Place:    "Madurai",
		DOB:      "1990-01-01",
		Password: "secret123",
		// mobile_number missing
	})

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["mobile_number"])
}

func TestValidateUserTypeRule(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		UserType:     "admin",
		Name:         "Raju",
		Place:        "Madurai",
		DOB:          "1990-01-01",
		MobileNumber: "9876543210",
		Password:     "secret123",
	})

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be farmer or buyer", vErr.Errors["user_type"])
}

func TestValidatePasswordLength(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		UserType:     "buyer",
		Name:         "Meena",
		Place:        "Chennai",
		DOB:          "1992-02-02",
		MobileNumber: "9000000001",
		Password:     "abc",
	})

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be at least 6 characters long", vErr.Errors["password"])
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTypeIsValid(t *testing.T) {
	assert.True(t, UserTypeFarmer.IsValid())
	assert.True(t, UserTypeBuyer.IsValid())
	assert.False(t, UserType("admin").IsValid())
	assert.False(t, UserType("").IsValid())
}

func TestUserHasLocation(t *testing.T) {
	lat, lng, zero := 9.9252, 78.1198, 0.0

	assert.False(t, (&User{}).HasLocation())
	assert.False(t, (&User{Latitude: &lat}).HasLocation())
	// A zero coordinate counts as unset.
	assert.False(t, (&User{Latitude: &zero, Longitude: &lng}).HasLocation())
	assert.True(t, (&User{Latitude: &lat, Longitude: &lng}).HasLocation())
}

func TestListingStockValue(t *testing.T) {
	l := &Listing{QuantityKg: 5, RatePerKg: 20}
	assert.InDelta(t, 100.0, l.StockValue(), 1e-9)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", 1)

	token, err := m.Sign("user-1", "admin@hotel.local", "Administrator", "hotel-1", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@hotel.local", claims.Email)
	assert.Equal(t, "hotel-1", claims.HotelID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	token, err := NewTokenManager("secret-a", 1).Sign("u", "e", "n", "h", "MANAGER")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 1).Parse(token)
	assert.Error(t, err)
}

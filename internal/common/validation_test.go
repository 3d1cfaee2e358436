package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	require.NoError(t, ValidateUsername("alice_99"))
	require.Error(t, ValidateUsername("ab"))
	require.Error(t, ValidateUsername("this_username_is_way_too_long"))
	require.Error(t, ValidateUsername("no spaces"))
	require.Error(t, ValidateUsername("bad!chars"))
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("alice@example.com"))
	require.NoError(t, ValidateEmail("  Alice@Example.COM "))
	require.Error(t, ValidateEmail("not-an-email"))
	require.Error(t, ValidateEmail("@example.com"))
}

func TestValidatePrivacyMode(t *testing.T) {
	for _, mode := range []PrivacyMode{PrivacyPublic, PrivacyFollowing, PrivacySelectedUsers, PrivacyPrivate} {
		require.NoError(t, ValidatePrivacyMode(mode))
	}
	err := ValidatePrivacyMode(PrivacyMode("friends"))
	require.Error(t, err)
	require.True(t, IsValidation(err))
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)
	require.NoError(t, CheckPassword("password123", hash))
	require.Error(t, CheckPassword("wrong", hash))
}

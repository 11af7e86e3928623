package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/domain"
)

func TestHashPassword_SaltsEachHash(t *testing.T) {
	first, err := auth.HashPassword("secret")
	require.NoError(t, err)
	second, err := auth.HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, "secret", first)
	assert.True(t, auth.CheckPassword("secret", first))
	assert.True(t, auth.CheckPassword("secret", second))
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"match", "secret", hash, true},
		{"wrong password", "Secret", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "secret", "not-a-bcrypt-hash", false},
		{"plaintext stored as hash", "secret", "secret", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, auth.CheckPassword(tc.password, tc.hash))
		})
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := auth.HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

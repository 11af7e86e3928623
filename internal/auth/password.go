package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// HashCost is the bcrypt work factor applied to every new password.
const HashCost = 8

// HashPassword returns a salted bcrypt hash of password. Every call draws a
// fresh salt, so hashing the same password twice yields different strings.
// Passwords longer than 72 bytes are rejected with domain.ErrValidation.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrValidation)
		}
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is
// treated as a mismatch.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. UserName is the login key and is unique.
// PasswordHash holds a bcrypt hash; the plaintext is never stored.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser carries the input of a registration, including the plaintext
// password. The service hashes it before anything reaches the repo.
type NewUser struct {
	FirstName string
	LastName  string
	UserName  string
	Password  string
}

// UserPatch is a partial update. Nil fields are left unchanged.
//
// Password is the plaintext supplied by the caller; the service replaces it
// with PasswordHash before calling the repo, which only ever writes
// PasswordHash.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	UserName     *string
	Password     *string
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.UserName == nil &&
		p.Password == nil && p.PasswordHash == nil
}

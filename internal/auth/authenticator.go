package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

var (
	// ErrIncorrectUsername rejects a login whose user name matches no account.
	ErrIncorrectUsername = fmt.Errorf("%w: Incorrect username", domain.ErrUnauthenticated)

	// ErrIncorrectPassword rejects a login whose password does not match.
	ErrIncorrectPassword = fmt.Errorf("%w: Incorrect password", domain.ErrUnauthenticated)
)

// Users is the read access the strategies need. repo.UserRepo satisfies it.
type Users interface {
	GetByUserName(ctx context.Context, userName string) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Authenticator resolves credentials to a user. It is shared by the session
// and basic strategies.
type Authenticator struct {
	users Users
}

// NewAuthenticator constructs an Authenticator that looks users up in users.
func NewAuthenticator(users Users) *Authenticator {
	return &Authenticator{users: users}
}

// Verify returns the user named userName if password matches its hash.
// It returns ErrIncorrectUsername or ErrIncorrectPassword on rejection and a
// wrapped repo error if the lookup itself fails.
//
// An unknown user name returns before any hashing work is done, so the two
// rejections take measurably different time.
func (a *Authenticator) Verify(ctx context.Context, userName, password string) (domain.User, error) {
	user, err := a.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, ErrIncorrectUsername
		}
		return domain.User{}, fmt.Errorf("auth.Authenticator.Verify: %w", err)
	}
	if !CheckPassword(password, user.PasswordHash) {
		return domain.User{}, ErrIncorrectPassword
	}
	return user, nil
}

// Reason returns the client-facing message of a rejection, e.g.
// "Incorrect password". Other errors yield a generic message.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrIncorrectUsername):
		return "Incorrect username"
	case errors.Is(err, ErrIncorrectPassword):
		return "Incorrect password"
	case errors.Is(err, ErrSessionExpired):
		return "Session expired"
	case errors.Is(err, ErrSessionInvalid):
		return "Invalid session"
	case errors.Is(err, ErrMissingCredentials):
		return "Authentication required"
	default:
		return "Authentication failed"
	}
}

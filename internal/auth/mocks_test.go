package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/domain"
)

// mockUsers is a hand-written test double for auth.Users.
type mockUsers struct {
	getByUserName func(ctx context.Context, userName string) (domain.User, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.User, error)
}

func (m *mockUsers) GetByUserName(ctx context.Context, userName string) (domain.User, error) {
	return m.getByUserName(ctx, userName)
}
func (m *mockUsers) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}

var _ auth.Users = (*mockUsers)(nil)

// memStore is an in-memory auth.SessionStore.
type memStore struct {
	sessions map[string]domain.Session
	purged   int
}

func newMemStore() *memStore { return &memStore{sessions: map[string]domain.Session{}} }

func (m *memStore) Create(_ context.Context, s domain.Session) (domain.Session, error) {
	m.sessions[s.Token] = s
	return s, nil
}
func (m *memStore) GetByToken(_ context.Context, token string) (domain.Session, error) {
	s, ok := m.sessions[token]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	return s, nil
}
func (m *memStore) Delete(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}
func (m *memStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for token, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, token)
			n++
		}
	}
	m.purged += int(n)
	return n, nil
}

var _ auth.SessionStore = (*memStore)(nil)

// alice is the only account known to aliceUsers; her password is "secret".
func alice(t *testing.T) domain.User {
	t.Helper()
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	return domain.User{
		ID:           uuid.MustParse("6f1c2a8e-3d4b-4c1e-9a7f-0b2d3e4f5a6b"),
		LastName:     "Liddell",
		UserName:     "alice",
		PasswordHash: hash,
	}
}

func aliceUsers(user domain.User) *mockUsers {
	return &mockUsers{
		getByUserName: func(_ context.Context, userName string) (domain.User, error) {
			if userName == user.UserName {
				return user, nil
			}
			return domain.User{}, domain.ErrNotFound
		},
		getByID: func(_ context.Context, id uuid.UUID) (domain.User, error) {
			if id == user.ID {
				return user, nil
			}
			return domain.User{}, domain.ErrNotFound
		},
	}
}

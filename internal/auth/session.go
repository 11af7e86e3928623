package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

var (
	// ErrSessionInvalid rejects a token that names no stored session.
	ErrSessionInvalid = fmt.Errorf("%w: invalid session", domain.ErrUnauthenticated)

	// ErrSessionExpired rejects a token whose session has passed its expiry.
	ErrSessionExpired = fmt.Errorf("%w: session expired", domain.ErrUnauthenticated)

	// ErrMissingCredentials rejects a request that carries neither a session
	// cookie nor basic credentials.
	ErrMissingCredentials = fmt.Errorf("%w: no credentials supplied", domain.ErrUnauthenticated)
)

// SessionStore persists sessions. repo.SessionRepo satisfies it.
type SessionStore interface {
	Create(ctx context.Context, s domain.Session) (domain.Session, error)
	GetByToken(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Verifier resolves credentials to a user. *Authenticator satisfies it.
type Verifier interface {
	Verify(ctx context.Context, userName, password string) (domain.User, error)
}

// Sessions implements the session strategy: one verification at login, then
// a time-bounded server-side session identified by an opaque token.
type Sessions struct {
	verifier Verifier
	store    SessionStore
	users    Users
	ttl      time.Duration
	now      func() time.Time
}

// NewSessions constructs the session strategy. Sessions expire ttl after login.
func NewSessions(verifier Verifier, store SessionStore, users Users, ttl time.Duration) *Sessions {
	return &Sessions{verifier: verifier, store: store, users: users, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (s *Sessions) WithClock(now func() time.Time) *Sessions {
	s.now = now
	return s
}

// TTL reports how long a new session stays valid.
func (s *Sessions) TTL() time.Duration { return s.ttl }

// Login verifies the credentials and, on success, stores a new session.
// Rejections are returned unchanged from the Verifier.
func (s *Sessions) Login(ctx context.Context, userName, password string) (domain.Session, error) {
	user, err := s.verifier.Verify(ctx, userName, password)
	if err != nil {
		return domain.Session{}, err
	}

	now := s.now()
	if n, err := s.store.DeleteExpired(ctx, now); err != nil {
		slog.WarnContext(ctx, "purging expired sessions failed", "error", err)
	} else if n > 0 {
		slog.DebugContext(ctx, "purged expired sessions", "count", n)
	}

	session, err := s.store.Create(ctx, domain.Session{
		Token:     rand.Text(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth.Sessions.Login: %w", err)
	}
	return session, nil
}

// Resolve returns the user owning the session named by token.
// Unknown tokens yield ErrSessionInvalid; expired sessions are deleted and
// yield ErrSessionExpired.
func (s *Sessions) Resolve(ctx context.Context, token string) (domain.User, error) {
	session, err := s.store.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, ErrSessionInvalid
		}
		return domain.User{}, fmt.Errorf("auth.Sessions.Resolve: %w", err)
	}

	if session.Expired(s.now()) {
		if err := s.store.Delete(ctx, token); err != nil {
			slog.WarnContext(ctx, "deleting expired session failed", "error", err)
		}
		return domain.User{}, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, ErrSessionInvalid
		}
		return domain.User{}, fmt.Errorf("auth.Sessions.Resolve: %w", err)
	}
	return user, nil
}

// Logout deletes the session named by token. Unknown tokens are ignored.
func (s *Sessions) Logout(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("auth.Sessions.Logout: %w", err)
	}
	return nil
}

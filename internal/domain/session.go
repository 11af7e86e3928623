package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login created by the session strategy.
// Token is the opaque value handed to the client in a cookie.
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

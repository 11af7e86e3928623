// Package handler implements the HTTP handlers for the Traveler API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, user.go, trip.go, ...) but share the same Server struct so they
// can access its dependencies. Routes wires them into a chi router.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// The servicer interfaces below are defined here, in the consumer package,
// following "accept interfaces, return concrete types". They let handler
// tests inject mocks without touching the database or service layer.

// UserServicer defines the user operations the handlers depend on.
type UserServicer interface {
	Create(ctx context.Context, in domain.NewUser) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	ListMemories(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryServicer defines the memory operations the handlers depend on.
type MemoryServicer interface {
	Create(ctx context.Context, memory domain.Memory) (domain.Memory, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.MemoryPatch) (domain.Memory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionServicer defines the login/logout operations. *auth.Sessions
// satisfies it.
type SessionServicer interface {
	Login(ctx context.Context, userName, password string) (domain.Session, error)
	Logout(ctx context.Context, token string) error
	TTL() time.Duration
}

// UploadSigner issues pre-signed upload URLs. *objectstore.Presigner
// satisfies it.
type UploadSigner interface {
	UploadURL(ctx context.Context, filename, contentType string) (string, error)
}

// Deps holds everything the Server needs. Every field is required.
type Deps struct {
	Users    UserServicer
	Trips    TripServicer
	Memories MemoryServicer
	Sessions SessionServicer
	Uploads  UploadSigner

	// RequireUser guards the protected routes; see auth.RequireUser.
	RequireUser func(http.Handler) http.Handler

	// CookieSecure marks the session cookie Secure.
	CookieSecure bool
}

// Server implements every API endpoint.
type Server struct {
	users        UserServicer
	trips        TripServicer
	memories     MemoryServicer
	sessions     SessionServicer
	uploads      UploadSigner
	requireUser  func(http.Handler) http.Handler
	cookieSecure bool
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	return &Server{
		users:        d.Users,
		trips:        d.Trips,
		memories:     d.Memories,
		sessions:     d.Sessions,
		uploads:      d.Uploads,
		requireUser:  d.RequireUser,
		cookieSecure: d.CookieSecure,
	}
}

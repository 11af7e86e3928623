package auth

import (
	"context"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

type userKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user.
// RequireUser calls it; tests may call it directly.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFrom returns the authenticated user stored in ctx, if any.
func UserFrom(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey{}).(domain.User)
	return user, ok
}

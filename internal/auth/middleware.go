package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "traveler_session"

// Realm is announced in the WWW-Authenticate header of basic-auth challenges.
const Realm = "traveler"

// SessionResolver maps a session token to its user. *Sessions satisfies it.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (domain.User, error)
}

// RequireUser returns a middleware that admits only authenticated requests.
//
// A valid session cookie is tried first. If it is absent or rejected, HTTP
// basic credentials are verified on this request alone. Otherwise the request
// is denied with 401 and a basic-auth challenge. The admitted user is stored
// in the request context (see UserFrom).
func RequireUser(verifier Verifier, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			rejection := ErrMissingCredentials

			if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
				user, err := sessions.Resolve(ctx, c.Value)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
					return
				}
				if !errors.Is(err, domain.ErrUnauthenticated) {
					fail(w, r, err)
					return
				}
				rejection = err
			}

			if userName, password, ok := r.BasicAuth(); ok {
				user, err := verifier.Verify(ctx, userName, password)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
					return
				}
				if !errors.Is(err, domain.ErrUnauthenticated) {
					fail(w, r, err)
					return
				}
				rejection = err
			}

			deny(w, rejection)
		})
	}
}

// deny writes a 401 with a basic-auth challenge and the rejection reason.
func deny(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+Realm+`", charset="UTF-8"`)
	writeJSON(w, http.StatusUnauthorized, map[string]string{"code": "unauthenticated", "message": Reason(err)})
}

// fail writes a 500 for a lookup that broke rather than rejected.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "authentication lookup failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"code": "internal_error", "message": "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

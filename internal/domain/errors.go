package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed image URL).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrReferential is returned when a write names a parent row that does not
// exist: a trip for an unknown user name, a memory for an unknown trip, or a
// foreign-key violation raised by the database.
var ErrReferential = errors.New("referenced resource does not exist")

// ErrConflict is returned when a write would violate a uniqueness rule,
// e.g. registering a user name that is already taken.
var ErrConflict = errors.New("conflict")

// ErrUnauthenticated is the parent of every credential rejection.
// Handlers should map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrUpstream is returned when an external collaborator (geocoder, object
// store) fails. Handlers should map this to HTTP 502.
var ErrUpstream = errors.New("upstream service error")

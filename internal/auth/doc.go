// Package auth provides password hashing and the two credential strategies
// of the Traveler API.
//
// # Strategies
//
// Both strategies resolve a (user name, password) pair through
// [Authenticator.Verify] and differ only in how the outcome is carried:
//
//   - Session: [Sessions.Login] verifies once and stores a server-side
//     session; later requests present the opaque token in a cookie.
//   - Basic: [RequireUser] verifies the Authorization header on every
//     request and keeps no state.
//
// IMPORTANT: Basic auth transmits credentials base64-encoded, not encrypted.
// TLS must be used in production.
//
// # Rejections
//
// Every rejection wraps [domain.ErrUnauthenticated]; infrastructure failures
// do not.
package auth

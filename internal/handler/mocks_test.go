package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/handler"
)

// The mocks below are test doubles for the handler's servicer interfaces.
// Set only the method fields your test needs.

type mockUserServicer struct {
	create  func(ctx context.Context, in domain.NewUser) (domain.User, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.User, error)
	update  func(ctx context.Context, id uuid.UUID, p domain.UserPatch) (domain.User, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserServicer) Create(ctx context.Context, in domain.NewUser) (domain.User, error) {
	return m.create(ctx, in)
}
func (m *mockUserServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserServicer) Update(ctx context.Context, id uuid.UUID, p domain.UserPatch) (domain.User, error) {
	return m.update(ctx, id, p)
}
func (m *mockUserServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockTripServicer struct {
	create       func(ctx context.Context, in domain.NewTrip) (domain.Trip, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	listMemories func(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error)
	update       func(ctx context.Context, id uuid.UUID, p domain.TripPatch) (domain.Trip, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) ListMemories(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error) {
	return m.listMemories(ctx, tripID)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, p domain.TripPatch) (domain.Trip, error) {
	return m.update(ctx, id, p)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockMemoryServicer struct {
	create  func(ctx context.Context, m domain.Memory) (domain.Memory, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Memory, error)
	update  func(ctx context.Context, id uuid.UUID, p domain.MemoryPatch) (domain.Memory, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMemoryServicer) Create(ctx context.Context, mem domain.Memory) (domain.Memory, error) {
	return m.create(ctx, mem)
}
func (m *mockMemoryServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error) {
	return m.getByID(ctx, id)
}
func (m *mockMemoryServicer) Update(ctx context.Context, id uuid.UUID, p domain.MemoryPatch) (domain.Memory, error) {
	return m.update(ctx, id, p)
}
func (m *mockMemoryServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockSessionServicer struct {
	login  func(ctx context.Context, userName, password string) (domain.Session, error)
	logout func(ctx context.Context, token string) error
}

func (m *mockSessionServicer) Login(ctx context.Context, userName, password string) (domain.Session, error) {
	return m.login(ctx, userName, password)
}
func (m *mockSessionServicer) Logout(ctx context.Context, token string) error {
	return m.logout(ctx, token)
}
func (m *mockSessionServicer) TTL() time.Duration { return 30 * time.Minute }

type mockUploadSigner struct {
	uploadURL func(ctx context.Context, filename, contentType string) (string, error)
}

func (m *mockUploadSigner) UploadURL(ctx context.Context, filename, contentType string) (string, error) {
	return m.uploadURL(ctx, filename, contentType)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.UserServicer    = (*mockUserServicer)(nil)
	_ handler.TripServicer    = (*mockTripServicer)(nil)
	_ handler.MemoryServicer  = (*mockMemoryServicer)(nil)
	_ handler.SessionServicer = (*mockSessionServicer)(nil)
	_ handler.UploadSigner    = (*mockUploadSigner)(nil)
)

// ---- helpers ---------------------------------------------------------------

var alice = domain.User{
	ID:       uuid.MustParse("6f1c2a8e-3d4b-4c1e-9a7f-0b2d3e4f5a6b"),
	LastName: "Liddell",
	UserName: "alice",
}

// asAlice stands in for auth.RequireUser: every request is alice's.
func asAlice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), alice)))
	})
}

// newHTTPHandler wires a Server with the given mocks into the router, the
// same way the serve command does. Nil dependencies get empty mocks.
func newHTTPHandler(d handler.Deps) http.Handler {
	if d.Users == nil {
		d.Users = &mockUserServicer{}
	}
	if d.Trips == nil {
		d.Trips = &mockTripServicer{}
	}
	if d.Memories == nil {
		d.Memories = &mockMemoryServicer{}
	}
	if d.Sessions == nil {
		d.Sessions = &mockSessionServicer{}
	}
	if d.Uploads == nil {
		d.Uploads = &mockUploadSigner{}
	}
	if d.RequireUser == nil {
		d.RequireUser = asAlice
	}
	return handler.NewServer(d).Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

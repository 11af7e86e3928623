package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/repo"
)

// The mocks below are hand-written test doubles for the repo interfaces.
// Each method is a function field. Set only the ones your test needs; an
// unset field panics, which flags an unexpected call.

type mockUserRepo struct {
	create        func(ctx context.Context, u domain.User) (domain.User, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByUserName func(ctx context.Context, userName string) (domain.User, error)
	update        func(ctx context.Context, id uuid.UUID, p domain.UserPatch) (domain.User, error)
	delete        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByUserName(ctx context.Context, userName string) (domain.User, error) {
	return m.getByUserName(ctx, userName)
}
func (m *mockUserRepo) Update(ctx context.Context, id uuid.UUID, p domain.UserPatch) (domain.User, error) {
	return m.update(ctx, id, p)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockTripRepo struct {
	create    func(ctx context.Context, t domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, id uuid.UUID, p domain.TripPatch) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, id uuid.UUID, p domain.TripPatch) (domain.Trip, error) {
	return m.update(ctx, id, p)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockMemoryRepo struct {
	create       func(ctx context.Context, mem domain.Memory) (domain.Memory, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Memory, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error)
	update       func(ctx context.Context, id uuid.UUID, p domain.MemoryPatch) (domain.Memory, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMemoryRepo) Create(ctx context.Context, mem domain.Memory) (domain.Memory, error) {
	return m.create(ctx, mem)
}
func (m *mockMemoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error) {
	return m.getByID(ctx, id)
}
func (m *mockMemoryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockMemoryRepo) Update(ctx context.Context, id uuid.UUID, p domain.MemoryPatch) (domain.Memory, error) {
	return m.update(ctx, id, p)
}
func (m *mockMemoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockGeocoder struct {
	geocode func(ctx context.Context, address string) (domain.Coordinates, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	return m.geocode(ctx, address)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.UserRepo   = (*mockUserRepo)(nil)
	_ repo.TripRepo   = (*mockTripRepo)(nil)
	_ repo.MemoryRepo = (*mockMemoryRepo)(nil)
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

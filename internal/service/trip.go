package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds the users repo because a trip names its owner by user name, and
// the memories repo to list a trip's memories.
type TripService struct {
	trips    repo.TripRepo
	users    repo.UserRepo
	memories repo.MemoryRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, users repo.UserRepo, memories repo.MemoryRepo) *TripService {
	return &TripService{trips: trips, users: users, memories: memories}
}

// Create validates the trip, resolves the owner's user name and persists it.
// Returns domain.ErrValidation for invalid input and domain.ErrReferential if
// no user has that name; in that case nothing is inserted.
func (s *TripService) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	trip := domain.Trip{
		Origin:      in.Origin,
		Destination: in.Destination,
		BeginDate:   in.BeginDate,
		EndDate:     in.EndDate,
	}
	if err := requireText("userName", in.UserName); err != nil {
		return domain.Trip{}, err
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	owner, err := s.users.GetByUserName(ctx, in.UserName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Trip{}, fmt.Errorf("%w: no user named %q", domain.ErrReferential, in.UserName)
		}
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip.UserID = owner.ID

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// ListMemories returns every memory of a trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) ListMemories(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TripService.ListMemories: %w", err)
	}
	memories, err := s.memories.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListMemories: %w", err)
	}
	if memories == nil {
		return []domain.Memory{}, nil
	}
	return memories, nil
}

// Update applies a partial update. The merged trip must still satisfy the
// creation rules, so a patch moving only endDate is checked against the
// stored beginDate.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	if err := requireTextIfPresent("origin", patch.Origin); err != nil {
		return domain.Trip{}, err
	}
	if err := requireTextIfPresent("destination", patch.Destination); err != nil {
		return domain.Trip{}, err
	}

	if patch.BeginDate != nil || patch.EndDate != nil {
		current, err := s.trips.GetByID(ctx, id)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
		}
		if err := validateTrip(patch.Apply(current)); err != nil {
			return domain.Trip{}, err
		}
	}

	result, err := s.trips.Update(ctx, id, patch)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID; its memories go with it.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Origin and Destination must be non-empty.
//   - Both dates must be set, and EndDate must not be before BeginDate.
func validateTrip(trip domain.Trip) error {
	if err := requireText("origin", trip.Origin); err != nil {
		return err
	}
	if err := requireText("destination", trip.Destination); err != nil {
		return err
	}
	if trip.BeginDate.IsZero() {
		return fmt.Errorf("%w: beginDate is required", domain.ErrValidation)
	}
	if trip.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.BeginDate) {
		return fmt.Errorf("%w: endDate must not be before beginDate", domain.ErrValidation)
	}
	return nil
}

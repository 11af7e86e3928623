package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/repo"
)

// Geocoder turns a free-text place into coordinates. geocode.Client
// satisfies it. Errors wrapping domain.ErrValidation mean the place could
// not be resolved; anything else is treated as an upstream failure.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// MemoryService implements business logic for Memory operations.
type MemoryService struct {
	memories repo.MemoryRepo
	geocoder Geocoder
}

// NewMemoryService constructs a MemoryService. geocoder may be nil, in which
// case locations are stored exactly as given.
func NewMemoryService(memories repo.MemoryRepo, geocoder Geocoder) *MemoryService {
	return &MemoryService{memories: memories, geocoder: geocoder}
}

// Create validates the memory, geocodes its location when a geocoder is
// configured, and persists it.
// Returns domain.ErrReferential if the trip does not exist and
// domain.ErrUpstream if the geocoder fails.
func (s *MemoryService) Create(ctx context.Context, memory domain.Memory) (domain.Memory, error) {
	if err := validateMemory(memory); err != nil {
		return domain.Memory{}, err
	}

	if s.geocoder != nil {
		coords, err := s.geocoder.Geocode(ctx, memory.Location)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return domain.Memory{}, err
			}
			return domain.Memory{}, fmt.Errorf("service.MemoryService.Create: %w: %w", domain.ErrUpstream, err)
		}
		memory.Location = coords.String()
	}

	result, err := s.memories.Create(ctx, memory)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("service.MemoryService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single memory by ID.
func (s *MemoryService) GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error) {
	result, err := s.memories.GetByID(ctx, id)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("service.MemoryService.GetByID: %w", err)
	}
	return result, nil
}

// Update applies a partial update. Locations are not geocoded on update.
func (s *MemoryService) Update(ctx context.Context, id uuid.UUID, patch domain.MemoryPatch) (domain.Memory, error) {
	if patch.ImageURL != nil {
		if err := validateImageURL(*patch.ImageURL); err != nil {
			return domain.Memory{}, err
		}
	}
	if err := requireTextIfPresent("location", patch.Location); err != nil {
		return domain.Memory{}, err
	}
	if patch.Date != nil && patch.Date.IsZero() {
		return domain.Memory{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	result, err := s.memories.Update(ctx, id, patch)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("service.MemoryService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a memory by ID.
func (s *MemoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.memories.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.MemoryService.Delete: %w", err)
	}
	return nil
}

func validateMemory(m domain.Memory) error {
	if m.TripID == uuid.Nil {
		return fmt.Errorf("%w: tripId is required", domain.ErrValidation)
	}
	if err := validateImageURL(m.ImageURL); err != nil {
		return err
	}
	if err := requireText("location", m.Location); err != nil {
		return err
	}
	if m.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	return nil
}

func validateImageURL(raw string) error {
	if err := requireText("imgUrl", raw); err != nil {
		return err
	}
	if !govalidator.IsURL(raw) {
		return fmt.Errorf("%w: imgUrl must be a valid URL", domain.ErrValidation)
	}
	return nil
}

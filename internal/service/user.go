package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/repo"
)

// UserService implements business logic for User operations.
// It is the only place plaintext passwords are turned into hashes.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// Create validates the registration, hashes the password and persists the user.
// Returns domain.ErrValidation for missing fields and domain.ErrConflict if
// the user name is taken.
func (s *UserService) Create(ctx context.Context, in domain.NewUser) (domain.User, error) {
	if err := validateNewUser(in); err != nil {
		return domain.User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}

	result, err := s.users.Create(ctx, domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		UserName:     in.UserName,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	result, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByID: %w", err)
	}
	return result, nil
}

// Update applies a partial update. A new password is re-hashed before it
// reaches the repo.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (domain.User, error) {
	if err := validateUserPatch(patch); err != nil {
		return domain.User{}, err
	}

	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("service.UserService.Update: %w", err)
		}
		patch.PasswordHash = &hash
		patch.Password = nil
	}

	result, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a user together with its trips, memories and sessions.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}

func validateNewUser(in domain.NewUser) error {
	if err := requireText("lastName", in.LastName); err != nil {
		return err
	}
	if err := requireText("userName", in.UserName); err != nil {
		return err
	}
	return requireText("password", in.Password)
}

func validateUserPatch(p domain.UserPatch) error {
	if err := requireTextIfPresent("lastName", p.LastName); err != nil {
		return err
	}
	if err := requireTextIfPresent("userName", p.UserName); err != nil {
		return err
	}
	return requireTextIfPresent("password", p.Password)
}

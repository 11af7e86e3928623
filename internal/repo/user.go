package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// Create inserts a new user. user.PasswordHash must already be hashed.
	// Returns domain.ErrConflict if the user name is taken.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a user by primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetByUserName retrieves a user by exact, case-sensitive user name.
	// Returns domain.ErrNotFound if no user has that name.
	GetByUserName(ctx context.Context, userName string) (domain.User, error)

	// Update applies the non-nil fields of patch and returns the updated record.
	// Returns domain.ErrNotFound if no user with that ID exists.
	Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (domain.User, error)

	// Delete removes a user. Trips, memories and sessions cascade.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, first_name, last_name, user_name, password_hash, created_at, updated_at`

func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (first_name, last_name, user_name, password_hash)
		VALUES (NULLIF(@first_name, ''), @last_name, @user_name, @password_hash)
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"user_name":     user.UserName,
		"password_hash": user.PasswordHash,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByUserName(ctx context.Context, userName string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE user_name = @user_name`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_name": userName}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByUserName: %w", err)
	}
	return result, nil
}

// Update builds the SET clause from the non-nil patch fields only, so columns
// the caller did not mention are never rewritten.
func (r *pgUserRepo) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (domain.User, error) {
	set := newSetList()
	setIfPresent(set, "first_name", "NULLIF(@first_name, '')", patch.FirstName)
	setIfPresent(set, "last_name", "", patch.LastName)
	setIfPresent(set, "user_name", "", patch.UserName)
	setIfPresent(set, "password_hash", "", patch.PasswordHash)

	if set.empty() {
		return r.GetByID(ctx, id)
	}
	set.args["id"] = id

	q := `
		UPDATE users
		SET ` + set.sql() + `
		WHERE id = @id
		RETURNING ` + userColumns

	result, err := scanUser(r.db.QueryRow(ctx, q, set.args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u         domain.User
		id        pgtype.UUID
		firstName pgtype.Text
	)
	err := s.Scan(&id, &firstName, &u.LastName, &u.UserName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapError(err)
	}
	u.ID = uuid.UUID(id.Bytes)
	u.FirstName = firstName.String
	return u, nil
}

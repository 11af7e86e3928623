package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// MemoryRepo defines the persistence operations for Memories.
type MemoryRepo interface {
	// Create inserts a new memory and returns the persisted record.
	// Returns domain.ErrReferential if memory.TripID does not exist.
	Create(ctx context.Context, memory domain.Memory) (domain.Memory, error)

	// GetByID retrieves a single memory by its UUID.
	// Returns domain.ErrNotFound if no memory with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error)

	// ListByTripID returns all memories of a trip ordered by date ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error)

	// Update applies the non-nil fields of patch and returns the updated record.
	// Returns domain.ErrNotFound if no memory with that ID exists.
	Update(ctx context.Context, id uuid.UUID, patch domain.MemoryPatch) (domain.Memory, error)

	// Delete removes a memory by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgMemoryRepo is the Postgres implementation of MemoryRepo.
type pgMemoryRepo struct {
	db db
}

// NewMemoryRepo constructs a MemoryRepo backed by the provided db connection.
func NewMemoryRepo(db db) MemoryRepo {
	return &pgMemoryRepo{db: db}
}

const memoryColumns = `id, trip_id, img_url, location, comments, date, created_at, updated_at`

func (r *pgMemoryRepo) Create(ctx context.Context, memory domain.Memory) (domain.Memory, error) {
	const q = `
		INSERT INTO memories (trip_id, img_url, location, comments, date)
		VALUES (@trip_id, @img_url, @location, NULLIF(@comments, ''), @date)
		RETURNING ` + memoryColumns

	args := pgx.NamedArgs{
		"trip_id":  memory.TripID,
		"img_url":  memory.ImageURL,
		"location": memory.Location,
		"comments": memory.Comments,
		"date":     memory.Date,
	}

	result, err := scanMemory(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Memory{}, fmt.Errorf("repo.MemoryRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMemoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Memory, error) {
	const q = `SELECT ` + memoryColumns + ` FROM memories WHERE id = @id`

	result, err := scanMemory(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Memory{}, fmt.Errorf("repo.MemoryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgMemoryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Memory, error) {
	const q = `
		SELECT ` + memoryColumns + `
		FROM memories
		WHERE trip_id = @trip_id
		ORDER BY date, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.MemoryRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	memories := []domain.Memory{}
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MemoryRepo.ListByTripID: scan: %w", err)
		}
		memories = append(memories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MemoryRepo.ListByTripID: rows: %w", err)
	}
	return memories, nil
}

func (r *pgMemoryRepo) Update(ctx context.Context, id uuid.UUID, patch domain.MemoryPatch) (domain.Memory, error) {
	set := newSetList()
	setIfPresent(set, "img_url", "", patch.ImageURL)
	setIfPresent(set, "location", "", patch.Location)
	setIfPresent(set, "comments", "NULLIF(@comments, '')", patch.Comments)
	setIfPresent(set, "date", "", patch.Date)

	if set.empty() {
		return r.GetByID(ctx, id)
	}
	set.args["id"] = id

	q := `
		UPDATE memories
		SET ` + set.sql() + `
		WHERE id = @id
		RETURNING ` + memoryColumns

	result, err := scanMemory(r.db.QueryRow(ctx, q, set.args))
	if err != nil {
		return domain.Memory{}, fmt.Errorf("repo.MemoryRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgMemoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM memories WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.MemoryRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MemoryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanMemory maps a single database row into a domain.Memory.
func scanMemory(s scanner) (domain.Memory, error) {
	var (
		m        domain.Memory
		id       pgtype.UUID
		tripID   pgtype.UUID
		comments pgtype.Text
		date     pgtype.Date
	)
	err := s.Scan(&id, &tripID, &m.ImageURL, &m.Location, &comments, &date, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Memory{}, mapError(err)
	}
	m.ID = uuid.UUID(id.Bytes)
	m.TripID = uuid.UUID(tripID.Bytes)
	m.Comments = comments.String
	m.Date = date.Time
	return m, nil
}

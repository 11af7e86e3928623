package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// SessionRepo persists the server-side half of the session strategy.
type SessionRepo interface {
	// Create stores a session. Returns domain.ErrReferential if the user
	// does not exist.
	Create(ctx context.Context, s domain.Session) (domain.Session, error)

	// GetByToken returns the session for token, expired or not.
	// Returns domain.ErrNotFound if no such session exists.
	GetByToken(ctx context.Context, token string) (domain.Session, error)

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every session whose expiry is at or before now
	// and reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a SessionRepo backed by the provided db connection.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

func (r *pgSessionRepo) Create(ctx context.Context, s domain.Session) (domain.Session, error) {
	const q = `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES (@token, @user_id, @expires_at)
		RETURNING token, user_id, expires_at, created_at`

	args := pgx.NamedArgs{
		"token":      s.Token,
		"user_id":    s.UserID,
		"expires_at": s.ExpiresAt,
	}

	result, err := scanSession(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgSessionRepo) GetByToken(ctx context.Context, token string) (domain.Session, error) {
	const q = `
		SELECT token, user_id, expires_at, created_at
		FROM sessions
		WHERE token = @token`

	result, err := scanSession(r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token}))
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.GetByToken: %w", err)
	}
	return result, nil
}

func (r *pgSessionRepo) Delete(ctx context.Context, token string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = @token`, pgx.NamedArgs{"token": token}); err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", mapError(err))
	}
	return nil
}

func (r *pgSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= @now`, pgx.NamedArgs{"now": now})
	if err != nil {
		return 0, fmt.Errorf("repo.SessionRepo.DeleteExpired: %w", mapError(err))
	}
	return tag.RowsAffected(), nil
}

func scanSession(s scanner) (domain.Session, error) {
	var (
		sess   domain.Session
		userID pgtype.UUID
	)
	if err := s.Scan(&sess.Token, &userID, &sess.ExpiresAt, &sess.CreatedAt); err != nil {
		return domain.Session{}, mapError(err)
	}
	sess.UserID = uuid.UUID(userID.Bytes)
	return sess, nil
}

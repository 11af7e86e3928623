// Package repo contains all database access logic for the Traveler API.
// Each resource has its own file with an interface and a Postgres implementation.
// It holds SQL, type mapping and error translation, and no business logic.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// mapError translates driver errors into domain sentinels so that services
// and handlers never need to import pgx. Unrecognised errors pass through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrReferential, pgErr.ConstraintName)
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	case pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, pgErr.ColumnName)
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
	}
	return err
}

// setList accumulates the SET clause of a partial UPDATE.
// Every column is bound as a named argument of the same name.
type setList struct {
	clauses []string
	args    pgx.NamedArgs
}

func newSetList() *setList {
	return &setList{args: pgx.NamedArgs{}}
}

// add binds column to value. expr is the right-hand side and must reference
// @column; pass "" for the plain "@column".
func (s *setList) add(column, expr string, value any) {
	if expr == "" {
		expr = "@" + column
	}
	s.clauses = append(s.clauses, column+" = "+expr)
	s.args[column] = value
}

func (s *setList) empty() bool { return len(s.clauses) == 0 }

// sql renders the clause list, always refreshing updated_at.
func (s *setList) sql() string {
	return strings.Join(append(s.clauses, "updated_at = now()"), ",\n\t\t    ")
}

// setIfPresent adds column to s when v is non-nil.
func setIfPresent[T any](s *setList, column, expr string, v *T) {
	if v != nil {
		s.add(column, expr, *v)
	}
}

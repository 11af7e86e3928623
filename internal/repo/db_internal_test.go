package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

func TestMapError(t *testing.T) {
	plain := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "trips_user_id_fkey"}, domain.ErrReferential},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_user_name_key"}, domain.ErrConflict},
		{"not null", &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "last_name"}, domain.ErrValidation},
		{"check", &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "trips_dates_ordered"}, domain.ErrValidation},
		{"other", plain, plain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tc.in), tc.want)
		})
	}
	assert.NoError(t, mapError(nil))
}

func TestSetList(t *testing.T) {
	s := newSetList()
	assert.True(t, s.empty())

	name := "Smith"
	var skipped *string
	setIfPresent(s, "last_name", "", &name)
	setIfPresent(s, "first_name", "NULLIF(@first_name, '')", skipped)

	assert.False(t, s.empty())
	assert.Contains(t, s.sql(), "last_name = @last_name")
	assert.Contains(t, s.sql(), "updated_at = now()")
	assert.NotContains(t, s.sql(), "first_name")
	assert.Equal(t, pgx.NamedArgs{"last_name": "Smith"}, s.args)
}

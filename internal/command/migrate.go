package command

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/chasingSublimity/Traveler/migrations"
)

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema commands",
	}
	cmd.AddCommand(
		migrateUpCommand(),
		migrateDownCommand(),
		migrateStatusCommand(),
	)
	return cmd
}

// withProvider opens the database through the pgx database/sql driver and
// hands a goose Provider over the embedded migrations to fn.
func withProvider(cmd *cobra.Command, fn func(p *goose.Provider) error) (runErr error) {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	return fn(provider)
}

func migrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, func(p *goose.Provider) error {
				results, err := p.Up(cmd.Context())
				for _, res := range results {
					slog.InfoContext(cmd.Context(), "migration applied",
						slog.Int64("version", res.Source.Version),
						slog.String("path", res.Source.Path),
						slog.Duration("duration", res.Duration),
					)
				}
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				if len(results) == 0 {
					slog.InfoContext(cmd.Context(), "schema already up to date")
				}
				return nil
			})
		},
	}
}

func migrateDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, func(p *goose.Provider) error {
				res, err := p.Down(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				slog.InfoContext(cmd.Context(), "migration rolled back",
					slog.Int64("version", res.Source.Version),
					slog.String("path", res.Source.Path),
				)
				return nil
			})
		},
	}
}

func migrateStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProvider(cmd, func(p *goose.Provider) error {
				statuses, err := p.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				out := cmd.OutOrStdout()
				for _, st := range statuses {
					applied := "pending"
					if st.State == goose.StateApplied {
						applied = st.AppliedAt.Format("2006-01-02 15:04:05")
					}
					if _, err := fmt.Fprintf(out, "%-5d %-40s %s\n", st.Source.Version, st.Source.Path, applied); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

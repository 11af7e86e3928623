// Package command contains the CLI command constructors for the traveler
// binary: serve, migrate and user administration.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chasingSublimity/Traveler/internal/config"
)

type configKey struct{}

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "traveler [command] [flags]",
		Short:        "The Traveler travel-journal API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := newLogger(os.Stdout, cfg.LogLevel)
			slog.SetDefault(logger)
			logger.DebugContext(cmd.Context(), "configuration loaded",
				slog.String("port", cfg.Port),
				slog.Bool("geocoding", cfg.GeoAPIKey != ""),
				slog.Duration("session_ttl", cfg.SessionTTL),
			)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	cmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		userCommand(),
	)

	return cmd
}

func loadConfig(ctx context.Context) (config.Config, error) {
	cfg, ok := ctx.Value(configKey{}).(config.Config)
	if !ok {
		return config.Config{}, errors.New("configuration resolution failed")
	}
	return cfg, nil
}

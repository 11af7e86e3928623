package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/chasingSublimity/Traveler/internal/auth"
	"github.com/chasingSublimity/Traveler/internal/config"
	"github.com/chasingSublimity/Traveler/internal/geocode"
	"github.com/chasingSublimity/Traveler/internal/handler"
	"github.com/chasingSublimity/Traveler/internal/middleware"
	"github.com/chasingSublimity/Traveler/internal/objectstore"
	"github.com/chasingSublimity/Traveler/internal/repo"
	"github.com/chasingSublimity/Traveler/internal/service"
)

const shutdownTimeout = 15 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := slog.Default()

	// --- Database ---------------------------------------------------------
	pool, err := openPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.InfoContext(ctx, "database connection established")

	// --- Wiring -----------------------------------------------------------
	users := repo.NewUserRepo(pool)
	trips := repo.NewTripRepo(pool)
	memories := repo.NewMemoryRepo(pool)
	sessionStore := repo.NewSessionRepo(pool)

	authenticator := auth.NewAuthenticator(users)
	sessions := auth.NewSessions(authenticator, sessionStore, users, cfg.SessionTTL)

	var geocoder service.Geocoder
	if cfg.GeoAPIKey != "" {
		geocoder = geocode.NewClient(geocode.DefaultBaseURL, cfg.GeoAPIKey)
	} else {
		logger.InfoContext(ctx, "GEO_API_KEY not set; memory locations are stored as given")
	}

	srv := handler.NewServer(handler.Deps{
		Users:    service.NewUserService(users),
		Trips:    service.NewTripService(trips, users, memories),
		Memories: service.NewMemoryService(memories, geocoder),
		Sessions: sessions,
		Uploads: objectstore.NewPresigner(objectstore.Config{
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Region:          cfg.AWSRegion,
			Bucket:          cfg.UploadBucket,
		}),
		RequireUser:  auth.RequireUser(authenticator, sessions),
		CookieSecure: cfg.CookieSecure,
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown: give in-flight requests time to complete before
	// forcefully closing.
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/catalog"
	"maturity-assessment-service/internal/config"
	"maturity-assessment-service/internal/domain"
	"maturity-assessment-service/internal/infra/memory"
	"maturity-assessment-service/internal/infra/postgres"
	rediscache "maturity-assessment-service/internal/infra/redis"
	transport "maturity-assessment-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the assessment server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	loader, err := buildCatalogLoader(ctx, cfg, pool)
	if err != nil {
		return err
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogRepo app.CatalogRepository
	if redisClient != nil {
		catalogRepo = rediscache.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogRepo = memory.NewCatalogRepository(loader, catalogTTL)
	}

	// fail fast on a broken catalog instead of on the first request
	current, err := catalogRepo.GetCatalog(ctx)
	if err != nil {
		return err
	}
	slog.Info("catalog ready", "version", current.Version, "categories", len(current.Categories))

	sessionTTL := config.TTLDuration(cfg.Session.TTL, 24*time.Hour)
	var store app.SessionRepository
	if redisClient != nil {
		store = rediscache.NewSessionStore(redisClient, catalogRepo, sessionTTL)
	} else {
		store = memory.NewSessionStore()
	}
	service := app.NewAssessmentService(store, catalogRepo)

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     transport.NewServer(service).Router(),
		ReadTimeout: 15 * time.Second,
		// websocket connections are long lived, so no write timeout here
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		slog.Info("starting assessment service", "port", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildCatalogLoader picks the catalog source: Postgres when configured,
// then a YAML file, then the built-in catalog. An empty catalogs table is
// seeded from the file or built-in catalog.
func buildCatalogLoader(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (memory.CatalogLoader, error) {
	fallback := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		fallback = loaded
	}
	if pool == nil {
		return catalog.NewStaticLoader(fallback), nil
	}

	loader := postgres.NewCatalogLoader(pool)
	_, err := loader.LoadCatalog(ctx)
	switch {
	case errors.Is(err, domain.ErrCatalogNotFound):
		slog.Info("catalogs table empty, seeding", "version", fallback.Version)
		if err := loader.SaveCatalog(ctx, fallback); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}
	return loader, nil
}

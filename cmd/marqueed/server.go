package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/felixge/httpsnoop"
	_ "modernc.org/sqlite"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/appconfig"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/search"
	"github.com/vmunix/marquee/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"bytes", m.Written,
			"duration_ms", m.Duration.Milliseconds(),
		)
	})
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openFetcher returns the configured configuration source and a close func.
func openFetcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (appconfig.Fetcher, io.Closer, error) {
	switch cfg.AppConfig.Source {
	case config.SourceStore:
		path := cfg.AppConfig.Store.Path
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("create store dir: %w", err)
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		store := appconfig.NewStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("using configuration store", "path", path)
		return store, db, nil

	default:
		opts := []appconfig.Option{
			appconfig.WithBaseURL(cfg.AppConfig.Agent.URL),
			appconfig.WithTimeout(cfg.AppConfig.Agent.Timeout),
		}
		if cfg.AppConfig.Agent.ClientID != "" {
			opts = append(opts, appconfig.WithClientID(cfg.AppConfig.Agent.ClientID))
		}
		agent := appconfig.NewAgentClient(opts...)
		logger.Info("using configuration agent", "url", cfg.AppConfig.Agent.URL, "client_id", agent.ClientID())
		return agent, closerFunc(func() error { return nil }), nil
	}
}

// newHandler wires the catalog service, search engine and API.
func newHandler(cfg *config.Config, fetcher appconfig.Fetcher, logger *slog.Logger) (http.Handler, error) {
	mode, err := search.ParseGenreMatch(cfg.Search.GenreMatch)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	svc := catalog.NewService(fetcher,
		catalog.WithLogger(logger.With("component", "catalog")),
		catalog.WithCache(catalog.NewSnapshotCache(nil)),
	)

	api, err := v1.New(v1.ServerDeps{
		Catalog: svc,
		Engine:  search.NewEngine(mode),
		Logger:  logger,
	}, v1.Config{
		Key:       cfg.Key(),
		CacheTTL:  cfg.CacheTTL(),
		Version:   version,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	return logRequests(api.Handler(), logger.With("component", "http")), nil
}

func runServer(configPath string) error {
	if configPath == "" {
		p, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = p
	}

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, closer, err := openFetcher(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	handler, err := newHandler(cfg, fetcher, logger)
	if err != nil {
		return err
	}

	logger.Info("marqueed starting",
		"version", version,
		"config", configPath,
		"key", cfg.Key().String(),
		"cache_ttl", cfg.CacheTTL().String(),
		"source", cfg.AppConfig.Source,
	)

	runner := server.NewRunner(handler, server.Config{Addr: cfg.Addr()}, logger)
	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

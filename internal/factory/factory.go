package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/machgame/internal/dependencies/clock"
	"github.com/mcoot/machgame/internal/dependencies/ids"
	"github.com/mcoot/machgame/internal/services/dispatch"
	"github.com/mcoot/machgame/internal/services/matchmaking"
	"github.com/mcoot/machgame/internal/storage"
	"github.com/mcoot/machgame/internal/storage/memory"
	redisstorage "github.com/mcoot/machgame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   ids.Allocator

	// Services
	Matchmaking *matchmaking.Service
	Dispatcher  *dispatch.Dispatcher

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var (
		store  storage.Storage
		closer io.Closer
	)
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		// Identifiers restart at 1 with the process, so leftover records would collide
		if err := redisStore.Reset(ctx); err != nil {
			_ = redisStore.Close()
			return nil, fmt.Errorf("reset redis storage: %w", err)
		}
		logger.Info("redis storage reset", slog.String("url", cfg.RedisConfig.URL))
		store = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), ids.New(), logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, seq ids.Allocator, logger *slog.Logger) *App {
	matchmakingService := matchmaking.New(store, seq, clk, logger)
	dispatcher := dispatch.New(matchmakingService, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		IDs:         seq,
		Matchmaking: matchmakingService,
		Dispatcher:  dispatcher,
	}
}

// Close releases the storage backend's connections, if it holds any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

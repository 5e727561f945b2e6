package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/clock"
	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/random"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/admin"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/matching"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/reconcile"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/roster"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/scoring"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/session"
	"github.com/HyunseokSon/Addicton-sub000/internal/state"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage/memory"
	redisstorage "github.com/HyunseokSon/Addicton-sub000/internal/storage/redis"
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
	Clock  clock.Clock
	Random random.Random

	// State pipeline
	Engine *reconcile.Engine

	// Services
	AuditRecorder      *audit.Recorder
	ScoringService     *scoring.Service
	MatchingController *matching.Controller
	SessionController  *session.Controller
	RosterController   *roster.Controller
	AdminService       *admin.Service
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
	// MatchingOptions tunes the diversity pass (optional)
	// If zero value, defaults to matching.DefaultOptions()
	MatchingOptions matching.Options
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

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
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default matching options if not provided
	options := cfg.MatchingOptions
	if options.MaxPasses == 0 {
		options = matching.DefaultOptions()
	}

	return newWithDependencies(store, clk, rnd, options, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, options matching.Options, logger *slog.Logger) *App {
	// State pipeline
	engine := reconcile.NewEngine(state.NewContainer(state.New()), store, logger)

	// Create services
	recorder := audit.NewRecorder(store, clk, logger)
	scoringService := scoring.New()
	matchingService := matching.New(scoringService, options)
	matchingController := matching.NewController(engine, matchingService, recorder, clk, rnd, logger)
	sessionController := session.NewController(engine, recorder, clk, rnd, logger)
	rosterController := roster.NewController(engine, recorder, clk, rnd, logger)
	adminService := admin.New(store, recorder, clk, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Engine:             engine,
		AuditRecorder:      recorder,
		ScoringService:     scoringService,
		MatchingController: matchingController,
		SessionController:  sessionController,
		RosterController:   rosterController,
		AdminService:       adminService,
	}
}

// Bootstrap pulls the remote state into the local container and
// provisions the court pool. Call once at startup before serving.
func (a *App) Bootstrap(ctx context.Context) error {
	if err := a.Engine.Resync(ctx); err != nil {
		return err
	}
	return a.SessionController.Bootstrap(ctx)
}

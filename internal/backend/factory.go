package backend

import (
	"context"
	"fmt"
	"log/slog"

	"khata/internal/storage"
	"khata/internal/store/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateStores implements Factory.CreateStores
func (f *DefaultFactory) CreateStores(ctx context.Context, config Config) (*Stores, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteStores(config)
	case MemoryBackend:
		return f.createMemoryStores()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteStores(config Config) (*Stores, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)

	return &Stores{
		Transactions: repo,
		Budget:       repo,
		Cleanup:      repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryStores() (*Stores, error) {
	st := memory.New()

	f.logger.Info("Initialized memory backend")

	return &Stores{
		Transactions: st,
		Budget:       st,
		Cleanup:      nil,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return fmt.Errorf("SQLite database path is required for sqlite backend")
	}

	return nil
}

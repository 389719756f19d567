// Package backend selects and constructs the persistence layer.
package backend

import (
	"context"

	"khata/internal/store"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Stores bundles the persistence ports a backend provides.
type Stores struct {
	Transactions store.TransactionStore
	Budget       store.BudgetStore
	Cleanup      CleanupFunc
}

// Factory creates stores based on configuration
type Factory interface {
	CreateStores(ctx context.Context, config Config) (*Stores, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

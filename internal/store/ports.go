// Package store defines the ports for outbound persistence adapters.
package store

import (
	"context"
	"errors"
	"time"

	"khata/internal/core"
)

// ErrNotFound is returned by stores when a transaction id does not exist.
var ErrNotFound = errors.New("transaction not found")

type (
	// TransactionStore is the single serialized access point for
	// transaction mutations. Implementations are responsible for their
	// own write serialization; callers may invoke them concurrently.
	TransactionStore interface {
		// Insert persists a transaction and returns its assigned id.
		Insert(ctx context.Context, tx core.Transaction) (int64, error)
		// Delete removes a transaction by id.
		Delete(ctx context.Context, id int64) error
		// ListAll returns every transaction.
		ListAll(ctx context.Context) ([]core.Transaction, error)
		// ListRange returns transactions with start <= timestamp < end.
		ListRange(ctx context.Context, start, end time.Time) ([]core.Transaction, error)
		// Count returns the number of stored transactions.
		Count(ctx context.Context) (int64, error)
	}

	// BudgetStore holds the single monthly budget scalar.
	BudgetStore interface {
		// Budget returns the configured budget, or core.DefaultBudget
		// when none has been set.
		Budget(ctx context.Context) (core.Money, error)
		// SetBudget overwrites the budget wholesale.
		SetBudget(ctx context.Context, m core.Money) error
	}
)

// Package services orchestrates extraction, persistence and aggregation.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"khata/internal/core"
	"khata/internal/extract"
	"khata/internal/smsbackup"
	"khata/internal/store"
)

// Ingestor turns raw SMS bodies into stored transactions.
type Ingestor struct {
	store       store.TransactionStore
	concurrency int
}

func NewIngestor(s store.TransactionStore, concurrency int) *Ingestor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Ingestor{store: s, concurrency: concurrency}
}

// Backfill classifies and stores a batch of backed-up messages. It runs only
// against an empty store: if any transactions already exist the batch is
// skipped entirely, so re-reading the same backup never duplicates history.
// Returns the number of transactions inserted.
func (i *Ingestor) Backfill(ctx context.Context, msgs []smsbackup.Message) (int, error) {
	count, err := i.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count existing transactions: %w", err)
	}
	if count > 0 {
		slog.InfoContext(ctx, "Skipping backfill, store already populated",
			"existing", count,
			"messages", len(msgs))
		return 0, nil
	}

	var inserted atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for _, msg := range msgs {
		g.Go(func() error {
			tx, ok := extract.Classify(msg.Body, msg.Timestamp)
			if !ok {
				return nil
			}

			if _, err := i.store.Insert(ctx, tx); err != nil {
				// One bad message must not sink the whole batch.
				slog.WarnContext(ctx, "Failed to store backfilled transaction",
					"error", err,
					"merchant", tx.Merchant,
					"sender", msg.Sender)
				return nil
			}

			inserted.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(inserted.Load()), err
	}

	slog.InfoContext(ctx, "Backfill completed",
		"messages", len(msgs),
		"inserted", inserted.Load())

	return int(inserted.Load()), nil
}

// IngestOne classifies a single SMS body and stores the resulting
// transaction. Returns (nil, nil) when the message is not transactional.
func (i *Ingestor) IngestOne(ctx context.Context, body string, ts time.Time) (*core.Transaction, error) {
	tx, ok := extract.Classify(body, ts)
	if !ok {
		slog.DebugContext(ctx, "Message not transactional, skipping")
		return nil, nil
	}

	id, err := i.store.Insert(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("store transaction: %w", err)
	}
	tx.ID = id

	slog.InfoContext(ctx, "Tracked transaction",
		"id", tx.ID,
		"merchant", tx.Merchant,
		"amount_paise", tx.Amount.Paise,
		"type", tx.Type)

	return &tx, nil
}

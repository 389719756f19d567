// Package worker consumes live SMS events and feeds them to the ingestor.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"khata/internal/amqp"
	"khata/internal/services"
)

type IngestWorker struct {
	ingestor *services.Ingestor
}

func NewIngestWorker(ingestor *services.Ingestor) *IngestWorker {
	return &IngestWorker{ingestor: ingestor}
}

// HandleSms processes a single SMS event from the feed. A zero timestamp
// means the receipt time was lost in transit, so the worker's clock stands
// in for it. Storage errors propagate so the message is dropped rather
// than acked.
func (w *IngestWorker) HandleSms(ctx context.Context, msg *amqp.SmsEvent) error {
	ts := time.Now()
	if msg.Timestamp > 0 {
		ts = time.UnixMilli(msg.Timestamp)
	}

	tx, err := w.ingestor.IngestOne(ctx, msg.Body, ts)
	if err != nil {
		return fmt.Errorf("ingest SMS: %w", err)
	}
	if tx == nil {
		slog.DebugContext(ctx, "Skipped non-transactional SMS", "sender", msg.Sender)
		return nil
	}

	slog.InfoContext(ctx, "Processed SMS event",
		"id", tx.ID,
		"merchant", tx.Merchant,
		"amount_paise", tx.Amount.Paise,
		"sender", msg.Sender)

	return nil
}

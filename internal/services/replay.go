package services

import (
	"context"
	"log/slog"

	"khata/internal/amqp"
	"khata/internal/smsbackup"
)

// SmsPublisher pushes SMS events onto the live feed.
type SmsPublisher interface {
	PublishSms(ctx context.Context, msg *amqp.SmsEvent) error
}

// Replay publishes backup messages onto the live feed so the worker ingests
// them through the same path as real-time traffic. Messages are forwarded
// unclassified; the consumer decides what is transactional. Publish failures
// are logged and skipped, matching the per-message failure policy of ingest.
// Returns the number of messages published.
func Replay(ctx context.Context, pub SmsPublisher, msgs []smsbackup.Message) (int, error) {
	published := 0
	for _, msg := range msgs {
		event := &amqp.SmsEvent{
			Body:      msg.Body,
			Sender:    msg.Sender,
			Timestamp: msg.Timestamp.UnixMilli(),
		}
		if err := pub.PublishSms(ctx, event); err != nil {
			slog.WarnContext(ctx, "Failed to publish SMS event",
				"error", err,
				"sender", msg.Sender)
			continue
		}
		published++

		if ctx.Err() != nil {
			return published, ctx.Err()
		}
	}

	slog.InfoContext(ctx, "Replay completed",
		"messages", len(msgs),
		"published", published)

	return published, nil
}

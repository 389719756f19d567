package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khata/internal/amqp"
)

type capturingPublisher struct {
	events []*amqp.SmsEvent
}

func (p *capturingPublisher) PublishSms(_ context.Context, msg *amqp.SmsEvent) error {
	p.events = append(p.events, msg)
	return nil
}

func TestReplay(t *testing.T) {
	pub := &capturingPublisher{}
	msgs := backupMessages(
		"Sent Rs.120.00 to zomato via UPI",
		"Your OTP is 482913, do not share it",
	)

	published, err := Replay(context.Background(), pub, msgs)
	require.NoError(t, err)
	assert.Equal(t, 2, published, "replay forwards everything; the consumer classifies")
	require.Len(t, pub.events, 2)

	assert.Equal(t, msgs[0].Body, pub.events[0].Body)
	assert.Equal(t, "HDFCBK", pub.events[0].Sender)
	assert.Equal(t, msgs[0].Timestamp.UnixMilli(), pub.events[0].Timestamp)
}

type flakyPublisher struct {
	calls int
}

func (p *flakyPublisher) PublishSms(context.Context, *amqp.SmsEvent) error {
	p.calls++
	if p.calls == 1 {
		return errors.New("channel closed")
	}
	return nil
}

func TestReplayToleratesPublishFailures(t *testing.T) {
	pub := &flakyPublisher{}

	published, err := Replay(context.Background(), pub, backupMessages(
		"Sent Rs.120.00 to zomato",
		"Sent Rs.80.00 to swiggy",
	))
	require.NoError(t, err, "publish failures are logged, not fatal")
	assert.Equal(t, 1, published)
	assert.Equal(t, 2, pub.calls)
}

func TestReplayStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pub := &capturingPublisher{}
	published, err := Replay(ctx, pub, backupMessages(
		"Sent Rs.120.00 to zomato",
		"Sent Rs.80.00 to swiggy",
	))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, published)
}

func TestReplayEmpty(t *testing.T) {
	published, err := Replay(context.Background(), &capturingPublisher{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, published)
}

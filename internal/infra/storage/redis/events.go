package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crosslane/bridgewatch/internal/pkg/logger"
	"github.com/crosslane/bridgewatch/internal/pkg/x/chflow"
	"github.com/crosslane/bridgewatch/internal/txtracker"
)

// lifecycleEventsChannel is the pub/sub channel bridging engines publish
// protocol lifecycle notifications to.
//
// Format: "bridge:events"
const lifecycleEventsChannel = transactionStoragePrefix + ":events"

// eventEnvelope is the published wire shape of one lifecycle notification.
type eventEnvelope struct {
	TransactionID string         `json:"transactionId"`
	Method        string         `json:"method"`
	Values        map[string]any `json:"values"`
}

// Subscribe implements the txtracker.EventSource interface over Redis pub/sub.
// Malformed payloads are logged and dropped; the stream keeps flowing. The
// returned channel closes when the context is cancelled or the subscription
// drops.
func (c *client) Subscribe(ctx context.Context) (<-chan txtracker.Event, error) {
	pubsub := c.conn.Subscribe(ctx, lifecycleEventsChannel)

	// Force the subscription handshake so a dead connection fails here
	// instead of silently delivering nothing.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("subscribing to %q: %w", lifecycleEventsChannel, err)
	}

	out := make(chan txtracker.Event)
	go func() {
		defer close(out)
		defer pubsub.Close()

		for {
			msg, ok := chflow.Receive(ctx, pubsub.Channel())
			if !ok {
				return
			}

			var envelope eventEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				logger.Error(ctx, "dropping malformed lifecycle event",
					"channel", lifecycleEventsChannel,
					"error", err,
				)
				continue
			}

			event := txtracker.Event{
				TransactionID: envelope.TransactionID,
				Method:        envelope.Method,
				Values:        envelope.Values,
			}
			if !chflow.Send(ctx, out, event) {
				return
			}
		}
	}()

	return out, nil
}

// PublishEvent sends one lifecycle notification to every subscriber. Bridging
// engines running in-process use it to feed the tracker.
func (c *client) PublishEvent(ctx context.Context, event txtracker.Event) error {
	payload, err := json.Marshal(eventEnvelope{
		TransactionID: event.TransactionID,
		Method:        event.Method,
		Values:        event.Values,
	})
	if err != nil {
		return fmt.Errorf("encoding lifecycle event for %q: %w", event.TransactionID, err)
	}

	return c.conn.Publish(ctx, lifecycleEventsChannel, payload).Err()
}

// Compile-time assertion to ensure *client satisfies the
// txtracker.EventSource interface
var _ txtracker.EventSource = new(client)

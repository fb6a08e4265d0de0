package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/courtside/leaderboard-service/internal/tracing"
)

// New creates a Publisher backed by Google Cloud Pub/Sub.
func New(projectID string) Publisher {
	ctx := context.Background()
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create pubsub client: %v", err)
	}
	teardown := func() {
		pubSubC.Close()
	}

	return &client{
		client:   pubSubC,
		teardown: teardown,
	}
}

// Publish JSON-encodes the event and publishes it with an eventId attribute
// and the current trace context injected into the message attributes, so the
// consumer can parent its span on ours.
func (c *client) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error("Failed to marshal event", "error", err, "topic", topic)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	attrs := map[string]string{
		"eventId": uuid.NewString(),
	}
	tracing.Inject(ctx, attrs)

	result := c.client.Topic(topic).Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish event", "error", err, "topic", topic)
		return err
	}
	log.Info("Published event", "topic", topic, "serverID", serverID)
	return nil
}

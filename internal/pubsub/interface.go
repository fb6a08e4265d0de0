package pubsub

import "context"

// Publisher defines the interface for publishing events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// MatchCreatedEvent is the notification published once per recorded match.
// It is immutable and JSON-encoded on the wire.
type MatchCreatedEvent struct {
	VenueName     string    `json:"venueName"`
	OccurredAtUtc time.Time `json:"occurredAtUtc"`
}

// PushEnvelope is the JSON body Pub/Sub POSTs to a push endpoint.
type PushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes"`
		MessageID  string            `json:"messageId"`
	} `json:"message"`
}

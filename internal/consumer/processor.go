package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/courtside/leaderboard-service/internal/leaderboard"
	"github.com/courtside/leaderboard-service/internal/matches"
	"github.com/courtside/leaderboard-service/internal/metrics"
	"github.com/courtside/leaderboard-service/internal/pubsub"
	"github.com/courtside/leaderboard-service/internal/tracing"
)

// ErrMalformedEvent marks a message whose payload cannot be decoded. Such a
// message is a hard failure: redelivering it can never succeed, so the
// transport should hand it to the dead-letter backstop instead of retrying
// forever.
var ErrMalformedEvent = errors.New("malformed match-created event")

// New creates a new Processor.
func New(matchesClient matches.Client, builder *leaderboard.Builder, store leaderboard.Store, metrics metrics.Metrics) *Processor {
	return &Processor{
		matches: matchesClient,
		builder: builder,
		store:   store,
		metrics: metrics,
	}
}

// Handle runs one full leaderboard recomputation for a match-created
// notification. data is the raw JSON payload, attrs the message attributes
// (which may carry a trace parent). A nil return means the message can be
// acked; any error means it must not be, so the broker redelivers it.
// Delivery is at-least-once and the recomputation is a full overwrite, so
// repeats are harmless.
func (p *Processor) Handle(ctx context.Context, data []byte, attrs map[string]string) error {
	var event pubsub.MatchCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		p.metrics.IncEventsFailed("malformed")
		log.Error("Failed to decode match-created event", "error", err, "payload", string(data))
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.VenueName == "" {
		p.metrics.IncEventsFailed("malformed")
		log.Error("Match-created event has no venue name", "payload", string(data))
		return fmt.Errorf("%w: missing venueName", ErrMalformedEvent)
	}

	ctx, span := tracing.StartConsumerSpan(ctx, "leaderboard.recompute", attrs)
	defer span.End()
	span.SetAttributes(attribute.String("venue.name", event.VenueName))

	log.Info("Match created", "venue", event.VenueName, "occurredAtUtc", event.OccurredAtUtc)
	start := time.Now()

	history, err := p.matches.GetMatches(ctx, event.VenueName)
	if err != nil {
		p.metrics.IncEventsFailed("fetch")
		span.RecordError(err)
		return fmt.Errorf("failed to fetch match history for venue %q: %w", event.VenueName, err)
	}

	entries := p.builder.Build(history)
	doc := &leaderboard.Document{
		ID:           event.VenueName,
		VenueName:    event.VenueName,
		Entries:      entries,
		UpdatedAtUtc: time.Now().UTC(),
	}

	if err := p.store.Upsert(ctx, doc); err != nil {
		p.metrics.IncEventsFailed("store")
		span.RecordError(err)
		return fmt.Errorf("failed to store leaderboard for venue %q: %w", event.VenueName, err)
	}

	p.metrics.IncEventsProcessed()
	p.metrics.ObserveRecomputeDuration(time.Since(start).Seconds())
	log.Info("Leaderboard updated", "venue", event.VenueName, "entries", len(entries))
	return nil
}

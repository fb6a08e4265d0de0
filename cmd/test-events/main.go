package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/courtside/leaderboard-service/internal/pubsub"
)

// Publishes a stream of synthetic match-created events, for exercising the
// consumer end to end against a real Pub/Sub topic.
func main() {
	venues := flag.Int("venues", 3, "number of distinct venues to publish for")
	count := flag.Int("count", 10, "number of events to publish")
	interval := flag.Duration("interval", 100*time.Millisecond, "delay between events")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	projectID, ok := os.LookupEnv("GCP_PROJECT")
	if !ok {
		log.Fatal("Required environment variable GCP_PROJECT is not set.")
	}
	topic, ok := os.LookupEnv("MATCH_CREATED_TOPIC")
	if !ok {
		log.Fatal("Required environment variable MATCH_CREATED_TOPIC is not set.")
	}

	venueNames := make([]string, *venues)
	for i := range venueNames {
		venueNames[i] = fmt.Sprintf("venue-%s", uuid.NewString()[:8])
	}

	publisher := pubsub.New(projectID)
	ctx := context.Background()

	log.Info("Publishing synthetic match-created events", "venues", *venues, "count", *count)
	for i := range *count {
		event := pubsub.MatchCreatedEvent{
			VenueName:     venueNames[i%len(venueNames)],
			OccurredAtUtc: time.Now().UTC(),
		}
		if err := publisher.Publish(ctx, topic, event); err != nil {
			log.Error("Failed to publish event", "error", err, "venue", event.VenueName)
		}
		time.Sleep(*interval)
	}
	log.Info("Done")
}

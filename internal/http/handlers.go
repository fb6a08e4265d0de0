package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/courtside/leaderboard-service/internal/consumer"
	"github.com/courtside/leaderboard-service/internal/pubsub"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// MatchCreatedPushHandler receives match-created notifications delivered by a
// Pub/Sub push subscription. Responding 2xx acks the message; 4xx/5xx leaves
// it unacked so the broker redelivers it (and eventually dead-letters it, per
// the subscription's configuration). The request context carries the delivery
// deadline and is threaded through every downstream call.
func (s *Server) MatchCreatedPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match-created push message", "body", string(bodyBytes))

		var envelope pubsub.PushEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			log.Error("Failed to unmarshal push envelope", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		err = s.Processor.Handle(r.Context(), rawData, envelope.Message.Attributes)
		if errors.Is(err, consumer.ErrMalformedEvent) {
			// Redelivering an undecodable payload can never succeed; reject it
			// and let the dead-letter topic catch it.
			log.Error("Rejecting malformed match-created event", "error", err, "messageID", envelope.Message.MessageID)
			http.Error(w, "Malformed event", http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error("Failed to process match-created event, message will be redelivered", "error", err, "messageID", envelope.Message.MessageID)
			http.Error(w, "Failed to process event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// PublishMatchCreatedHandler publishes a synthetic match-created event for the
// given venue. Useful for re-triggering a recomputation by hand.
func (s *Server) PublishMatchCreatedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueName := r.URL.Query().Get("venueName")
		if venueName == "" {
			http.Error(w, "venueName is required", http.StatusBadRequest)
			return
		}

		event := pubsub.MatchCreatedEvent{
			VenueName:     venueName,
			OccurredAtUtc: time.Now().UTC(),
		}

		if isDryRunFromContext(r) {
			log.Info("Dry run: skipping publish", "venue", venueName)
			w.Write([]byte("OK (dry run)"))
			return
		}

		if err := s.Publisher.Publish(r.Context(), s.Cfg.MatchCreatedTopic, event); err != nil {
			log.Error("Failed to publish match-created event", "error", err, "venue", venueName)
			http.Error(w, "Failed to publish event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

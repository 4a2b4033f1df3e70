// Package events publishes domain events to Kafka. Publishing is strictly
// best-effort: a missing broker or write failure is logged and dropped,
// mirroring the fire-and-forget policy of the sync pipeline itself.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// TopicActivitySynced carries one message per accepted sync batch.
const TopicActivitySynced = "focusup.activity.synced"

// ActivitySynced is the payload published after a batch is stored.
type ActivitySynced struct {
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	Days      int       `json:"days"`
	Country   string    `json:"country,omitempty"`
	SyncedAt  time.Time `json:"synced_at"`
}

// Publisher writes events to Kafka. A nil Publisher is valid and drops
// everything, so callers never need to branch on whether eventing is
// configured.
type Publisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewPublisher builds a Publisher, or nil when no brokers are configured.
func NewPublisher(brokers []string, logger zerolog.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicActivitySynced,
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
		logger: logger,
	}
}

// PublishActivitySynced emits one activity.synced event. Failures are
// logged and swallowed.
func (p *Publisher) PublishActivitySynced(ctx context.Context, event ActivitySynced) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Msg("encode activity.synced event")
		return
	}
	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn().Err(err).Msg("publish activity.synced failed")
	}
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

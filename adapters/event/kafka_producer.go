package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/vedag812/netfolio-api/internal/config"
)

const TopicContentEvents = "content.events"

const (
	ContentEventProjectsUpdated = "projects.updated"
	ContentEventMediaUpdated    = "media.updated"
)

// ContentEventPayload announces that an admin write replaced a document.
// Consumers use it to trigger snapshot backups; nothing in the request path
// depends on delivery.
type ContentEventPayload struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  string    `json:"event_type"`
	Storage    string    `json:"storage,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ContentEventsWriter: contentWriter}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	if payload.EventID == uuid.Nil {
		payload.EventID = uuid.New()
	}
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal content event: %w", err)
	}

	return c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.EventType),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
}

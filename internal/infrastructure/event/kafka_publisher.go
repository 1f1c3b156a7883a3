package event

import (
	"context"
	"fmt"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/domain/shared"
	"github.com/ledgerhub/backend/internal/infrastructure/config"
)

// messageWriter is the part of kafka-go's Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher delivers domain events to Kafka. Each event type goes to
// its own topic, derived from the configured prefix, keyed by aggregate ID
// so one aggregate's events stay ordered within a partition.
type KafkaPublisher struct {
	writer      messageWriter
	topicPrefix string
	logger      *zap.Logger
}

// NewKafkaPublisher creates a publisher over the configured brokers
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{
		writer:      writer,
		topicPrefix: cfg.TopicPrefix,
		logger:      logger,
	}
}

// newKafkaPublisherWithWriter is used by tests to inject a fake writer
func newKafkaPublisherWithWriter(writer messageWriter, topicPrefix string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:      writer,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// Publish implements shared.EventPublisher
func (p *KafkaPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		data, err := Serialize(event)
		if err != nil {
			return err
		}
		messages = append(messages, kafkago.Message{
			Topic: p.topicFor(event),
			Key:   []byte(event.AggregateID().String()),
			Value: data,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(event.EventType())},
				{Key: "aggregate_type", Value: []byte(event.AggregateType())},
				{Key: "tenant_id", Value: []byte(event.TenantID().String())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	p.logger.Debug("events published", zap.Int("count", len(messages)))
	return nil
}

// Close shuts down the underlying writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// topicFor derives the topic name from the event type, e.g.
// "ledgerhub.events.account-payable-created" for AccountPayableCreated.
func (p *KafkaPublisher) topicFor(event shared.DomainEvent) string {
	return p.topicPrefix + "." + kebabCase(event.EventType())
}

func kebabCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Ensure KafkaPublisher implements EventPublisher
var _ shared.EventPublisher = (*KafkaPublisher)(nil)

package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

type fakeWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestEvent(t *testing.T) shared.DomainEvent {
	t.Helper()
	result := party.NewIndividualPerson(uuid.New(), "Maria", "123", "m@e.com", "11", party.MaritalStatusSingle)
	require.True(t, result.IsSuccess())
	return result.Value().GetDomainEvents()[0]
}

func TestKafkaPublisherPublish(t *testing.T) {
	t.Run("routes each event to its topic keyed by aggregate", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := newKafkaPublisherWithWriter(writer, "ledgerhub.events", zap.NewNop())
		event := newTestEvent(t)

		require.NoError(t, publisher.Publish(context.Background(), event))

		require.Len(t, writer.messages, 1)
		msg := writer.messages[0]
		assert.Equal(t, "ledgerhub.events.person-created", msg.Topic)
		assert.Equal(t, []byte(event.AggregateID().String()), msg.Key)

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, "PersonCreated", headers["event_type"])
		assert.Equal(t, "Person", headers["aggregate_type"])
		assert.Equal(t, event.TenantID().String(), headers["tenant_id"])
	})

	t.Run("the message body is a decodable envelope", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := newKafkaPublisherWithWriter(writer, "ledgerhub.events", zap.NewNop())
		event := newTestEvent(t)

		require.NoError(t, publisher.Publish(context.Background(), event))

		envelope, err := Deserialize(writer.messages[0].Value)
		require.NoError(t, err)
		assert.Equal(t, event.EventID(), envelope.EventID)
		assert.Equal(t, "PersonCreated", envelope.EventType)
		assert.Equal(t, event.AggregateID(), envelope.AggregateID)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
		assert.Equal(t, "Maria", payload["name"])
	})

	t.Run("no events is a no-op", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := newKafkaPublisherWithWriter(writer, "ledgerhub.events", zap.NewNop())

		require.NoError(t, publisher.Publish(context.Background()))
		assert.Empty(t, writer.messages)
	})

	t.Run("writer failure is wrapped", func(t *testing.T) {
		boom := errors.New("broker down")
		writer := &fakeWriter{err: boom}
		publisher := newKafkaPublisherWithWriter(writer, "ledgerhub.events", zap.NewNop())

		err := publisher.Publish(context.Background(), newTestEvent(t))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("close shuts the writer down", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := newKafkaPublisherWithWriter(writer, "ledgerhub.events", zap.NewNop())

		require.NoError(t, publisher.Close())
		assert.True(t, writer.closed)
	})
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PersonCreated", "person-created"},
		{"AccountPayablePaid", "account-payable-paid"},
		{"ReceivableInstallmentAdded", "receivable-installment-added"},
		{"already-kebab", "already-kebab"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, kebabCase(tt.input), "input %q", tt.input)
	}
}

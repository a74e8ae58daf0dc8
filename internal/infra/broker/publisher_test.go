//go:build unit

package broker_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/invoice"
	"stay-ledger/internal/infra/broker"
	"stay-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent []published
	err  error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 7, 10, 14, 0, 0, 0, time.UTC)

	t.Run("routes by domain and sends persistent json", func(t *testing.T) {
		ch := &fakeChannel{}
		pub := broker.NewAMQPPublisher(ch, "stay-ledger.events", discardLogger())
		ev := shared.NewStatusChanged(booking.Domain, uuid.New(), booking.StatusPending, booking.StatusConfirmed, at)

		require.NoError(t, pub.Publish(ctx, ev))
		require.Len(t, ch.sent, 1)

		got := ch.sent[0]
		assert.Equal(t, "stay-ledger.events", got.exchange)
		assert.Equal(t, "status.changed.booking", got.key)
		assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
		assert.Equal(t, "application/json", got.msg.ContentType)
		assert.Equal(t, ev.ID.String(), got.msg.MessageId)

		var body shared.StatusChanged
		require.NoError(t, json.Unmarshal(got.msg.Body, &body))
		assert.Equal(t, ev.EntityID, body.EntityID)
		assert.Equal(t, booking.StatusPending, body.From)
		assert.Equal(t, booking.StatusConfirmed, body.To)
		assert.True(t, at.Equal(body.OccurredAt))
	})

	t.Run("initial state event omits from", func(t *testing.T) {
		ch := &fakeChannel{}
		pub := broker.NewAMQPPublisher(ch, "events", discardLogger())
		ev := shared.NewStatusChanged(invoice.Domain, uuid.New(), "", "draft", at)

		require.NoError(t, pub.Publish(ctx, ev))
		assert.Equal(t, "status.changed.invoice", ch.sent[0].key)
		assert.NotContains(t, string(ch.sent[0].msg.Body), `"from"`)
	})

	t.Run("channel errors are returned", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		pub := broker.NewAMQPPublisher(ch, "events", discardLogger())

		err := pub.Publish(ctx, shared.NewStatusChanged(booking.Domain, uuid.New(), "", booking.StatusPending, at))
		assert.ErrorContains(t, err, "channel closed")
	})
}

func TestLogPublisher_Publish(t *testing.T) {
	pub := broker.NewLogPublisher(discardLogger())
	ev := shared.NewStatusChanged(booking.Domain, uuid.New(), "", booking.StatusPending, time.Now())
	assert.NoError(t, pub.Publish(context.Background(), ev))
}

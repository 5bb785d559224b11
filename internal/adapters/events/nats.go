package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"eventticketing/internal/domain"
)

// Delivery subject and queue group for invitation emails sent through NATS.
const (
	SubjectInvitationDeliver = "invitations.deliver"
	deliveryQueueGroup       = "invitation-senders"
)

// Bus is a NATS connection shared by the publisher and the delivery queue.
type Bus struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// Connect dials the NATS server at url.
func Connect(url string, logger *slog.Logger) (*Bus, error) {
	conn, err := nats.Connect(url, nats.Name("eventticketing"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Bus{conn: conn, logger: logger}, nil
}

// Publish marshals payload as JSON and publishes it on subject.
func (b *Bus) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	b.logger.DebugContext(ctx, "publishing event", "subject", subject)
	if err := b.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains pending messages and closes the connection.
func (b *Bus) Close() error {
	return b.conn.Drain()
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher() domain.EventPublisher {
	return noopPublisher{}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

// DeliveryQueue hands invitation emails to any subscriber in the delivery queue group.
type DeliveryQueue struct {
	bus     *Bus
	emails  domain.EmailService
	timeout time.Duration
	sub     *nats.Subscription
}

// NewDeliveryQueue returns a NATS-backed domain.DeliveryQueue. Call Start to consume.
func NewDeliveryQueue(bus *Bus, emails domain.EmailService, timeout time.Duration) *DeliveryQueue {
	return &DeliveryQueue{bus: bus, emails: emails, timeout: timeout}
}

// Enqueue publishes data for delivery. Failures are logged, never returned.
func (q *DeliveryQueue) Enqueue(data *domain.InvitationEmailData) {
	if err := q.bus.Publish(context.Background(), SubjectInvitationDeliver, data); err != nil {
		q.bus.logger.Error("failed to enqueue invitation", "event_id", data.EventID, "error", err)
	}
}

// Start subscribes this process to the delivery queue group.
func (q *DeliveryQueue) Start() error {
	sub, err := q.bus.conn.QueueSubscribe(SubjectInvitationDeliver, deliveryQueueGroup, func(msg *nats.Msg) {
		q.handle(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", SubjectInvitationDeliver, err)
	}
	q.sub = sub
	return nil
}

// Stop unsubscribes, letting in-flight messages finish.
func (q *DeliveryQueue) Stop() error {
	if q.sub == nil {
		return nil
	}
	return q.sub.Drain()
}

func (q *DeliveryQueue) handle(raw []byte) {
	var data domain.InvitationEmailData
	if err := json.Unmarshal(raw, &data); err != nil {
		q.bus.logger.Error("discarding malformed invitation message", "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()
	if err := q.emails.SendInvitation(ctx, &data); err != nil {
		q.bus.logger.Error("invitation delivery failed", "event_id", data.EventID, "error", err)
	}
}

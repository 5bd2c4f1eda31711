package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSPublisher publishes events as JSON messages on a NATS connection.
type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
}

// NewNATSPublisher connects to the NATS server at url. Subjects are formed as
// "<prefix>.<event>".
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("fintrack"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return NewNATSPublisherFromConn(nc, prefix), nil
}

// NewNATSPublisherFromConn wraps an existing connection. The publisher owns nc
// and closes it on Close.
func NewNATSPublisherFromConn(nc *nats.Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{nc: nc, prefix: prefix}
}

// Subject returns the full subject for an event name.
func (p *NATSPublisher) Subject(event string) string {
	return Subject(p.prefix, event)
}

// PublishTransactionPosted publishes the event on "<prefix>.transaction.posted".
func (p *NATSPublisher) PublishTransactionPosted(ctx context.Context, event *TransactionPosted) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := p.nc.Publish(p.Subject(SubjectTransactionPosted), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}

// Subject joins a prefix and an event name. An empty prefix yields the bare name.
func Subject(prefix, event string) string {
	if prefix == "" {
		return event
	}
	return prefix + "." + event
}

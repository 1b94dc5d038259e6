// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/models"
)

var (
	// ErrPublishingEvent wraps every failure to deliver an event to the broker.
	ErrPublishingEvent = errors.New("error publishing event")
	// ErrBrokerUnavailable is returned without dialing while the previous
	// dial failure is more recent than the redial delay.
	ErrBrokerUnavailable = errors.New("broker unavailable")
)

// defaultRedialDelay is the pause after a failed dial before the broker is
// tried again.
const defaultRedialDelay = 10 * time.Second

// AMQPNotifier publishes events as persistent JSON messages to a durable
// queue through the default exchange. The connection is opened lazily and
// re-established after the broker closes it.
type AMQPNotifier struct {
	url    string
	queue  string
	logger *logger.Logger

	mu          sync.Mutex
	conn        *amqp.Connection
	ch          *amqp.Channel
	dialFailed  time.Time
	redialDelay time.Duration

	now func() time.Time
}

func NewAMQPNotifier(url, queue string, log *logger.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		url:    url,
		queue:  queue,
		logger:      log,
		redialDelay: defaultRedialDelay,
		now:         time.Now,
	}
}

// BookingCreated publishes event to the configured queue.
func (n *AMQPNotifier) BookingCreated(ctx context.Context, event models.BookingCreatedEvent) error {
	msg, err := n.publishing(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	ch, err := n.channel(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	if err := ch.PublishWithContext(ctx, "", n.queue, false, false, msg); err != nil {
		n.reset()
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	return nil
}

// Close closes the channel and connection if open.
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var err error
	if n.ch != nil {
		err = errors.Join(err, n.ch.Close())
	}
	if n.conn != nil && !n.conn.IsClosed() {
		err = errors.Join(err, n.conn.Close())
	}
	n.ch, n.conn = nil, nil

	return err
}

func (n *AMQPNotifier) publishing(event models.BookingCreatedEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.now().UTC(),
		Type:         n.queue,
		Body:         body,
	}, nil
}

// channel returns an open channel, dialing and declaring the queue when
// needed. The dial is bounded by ctx. The caller must hold n.mu.
func (n *AMQPNotifier) channel(ctx context.Context) (*amqp.Channel, error) {
	if n.conn != nil && !n.conn.IsClosed() && n.ch != nil && !n.ch.IsClosed() {
		return n.ch, nil
	}
	n.reset()

	if !n.dialFailed.IsZero() && n.now().Sub(n.dialFailed) < n.redialDelay {
		return nil, ErrBrokerUnavailable
	}

	conn, err := amqp.DialConfig(n.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      dialContext(ctx),
	})
	if err != nil {
		n.dialFailed = n.now()
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	n.dialFailed = time.Time{}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(n.queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", n.queue, err)
	}

	n.conn, n.ch = conn, ch
	n.logger.Info().Str("queue", n.queue).Msg("connected to broker")

	return ch, nil
}

// dialContext connects with ctx and applies its deadline to the AMQP
// handshake. The client clears the deadline once the connection is open.
func dialContext(ctx context.Context) func(network, addr string) (net.Conn, error) {
	return func(network, addr string) (net.Conn, error) {
		var d net.Dialer
		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		if deadline, ok := ctx.Deadline(); ok {
			if err := conn.SetDeadline(deadline); err != nil {
				conn.Close()
				return nil, err
			}
		}
		return conn, nil
	}
}

// reset drops the cached connection. The caller must hold n.mu.
func (n *AMQPNotifier) reset() {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil && !n.conn.IsClosed() {
		_ = n.conn.Close()
	}
	n.ch, n.conn = nil, nil
}

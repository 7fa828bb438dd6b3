package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"lead-service/internal/config"
)

// Publisher sends lead events to NATS under a common subject prefix.
type Publisher struct {
	nc     *nats.Conn
	prefix string
}

// Connect establishes a NATS connection and keeps it open for future use.
func Connect(cfg config.NATSConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name("lead-service"),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	log.WithField("url", nc.ConnectedUrl()).Info("connected to nats")
	return newPublisher(nc, cfg.SubjectPrefix), nil
}

func newPublisher(nc *nats.Conn, prefix string) *Publisher {
	return &Publisher{nc: nc, prefix: strings.Trim(prefix, ".")}
}

func (p *Publisher) Publish(ctx context.Context, subject string, event interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Ensure NATS is connected before publishing
	if p.nc == nil || p.nc.IsClosed() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	full := p.subject(subject)
	if err := p.nc.Publish(full, data); err != nil {
		return fmt.Errorf("publish to %s: %w", full, err)
	}

	log.WithField("subject", full).Debug("event published")
	return nil
}

func (p *Publisher) subject(name string) string {
	if p.prefix == "" {
		return name
	}
	return p.prefix + "." + name
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() {
	if p.nc == nil || p.nc.IsClosed() {
		return
	}
	if err := p.nc.Drain(); err != nil {
		log.WithError(err).Warn("nats drain failed")
		p.nc.Close()
	}
}

// NoopPublisher drops events. Used when NATS_URL is not set.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error {
	return nil
}

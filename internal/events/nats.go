package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// NewNATS constructs a thin NATS-based publisher.
func NewNATS(log *slog.Logger, nc *nats.Conn) Publisher {
	return &natsPublisher{log: log, nc: nc}
}

type natsPublisher struct {
	log *slog.Logger
	nc  *nats.Conn
}

func (p *natsPublisher) Publish(_ context.Context, subject string, event DocumentEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to encode event", "subject", subject, "err", err)
		return
	}
	if err := p.nc.Publish(subject, body); err != nil {
		p.log.Warn("failed to publish event", "subject", subject, "err", err)
	}
}

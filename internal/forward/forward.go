// Package forward publishes decoded events to NATS so fleet monitoring can
// consume pulled logs without re-parsing them.
package forward

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/alfredjeanlab/cevlog/internal/model"
)

// SubjectPrefix is the root of the subject hierarchy; each event goes to
// <prefix>.<kind>, e.g. cev.events.java_crash. Unrecognized payload tags go
// to <prefix>.unknown.
const SubjectPrefix = "cev.events"

// Publisher sends JSON-encoded events to NATS subjects keyed by kind.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &Publisher{conn: nc}, nil
}

// Publish sends one event. Fire and forget; delivery is best effort. The
// NATS publish itself is buffered and non-blocking, so the context is
// consulted once up front to stop a canceled forwarding loop.
func (p *Publisher) Publish(ctx context.Context, ev model.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	return p.conn.Publish(Subject(ev), data)
}

// Flush waits for buffered publishes to reach the server.
func (p *Publisher) Flush() error {
	return p.conn.Flush()
}

func (p *Publisher) Close() error {
	p.conn.Close()
	return nil
}

// Subject returns the NATS subject for an event.
func Subject(ev model.Event) string {
	k := ev.Kind()
	if !k.IsValid() {
		return SubjectPrefix + ".unknown"
	}
	return SubjectPrefix + "." + k.String()
}

package pubsub

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"
)

const placementStreamName = "PLACEMENT_EVENTS"

// NATSPublisher mirrors room broadcasts into NATS JetStream so that other
// services can follow placement matches. Room "tournament_7" is published
// on "<prefix>.tournament_7".
type NATSPublisher struct {
	nc      *nats.Conn
	js      nats.JetStreamContext
	prefix  string
	logger  *slog.Logger
	publish func(subject string, data []byte) error
}

func NewNATSPublisher(natsURL, subjectPrefix string, logger *slog.Logger) (*NATSPublisher, error) {
	prefix := strings.Trim(strings.TrimSpace(subjectPrefix), ".")
	if prefix == "" {
		return nil, errors.New("nats subject prefix must not be empty")
	}

	nc, err := nats.Connect(natsURL, nats.Name("placement-system"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if _, err := js.StreamInfo(placementStreamName); err != nil {
		if !errors.Is(err, nats.ErrStreamNotFound) {
			nc.Close()
			return nil, fmt.Errorf("failed to look up stream %s: %w", placementStreamName, err)
		}
		_, err = js.AddStream(&nats.StreamConfig{
			Name:     placementStreamName,
			Subjects: []string{prefix + ".>"},
			Storage:  nats.FileStorage,
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to create stream %s: %w", placementStreamName, err)
		}
	}

	p := &NATSPublisher{nc: nc, js: js, prefix: prefix, logger: logger}
	p.publish = func(subject string, data []byte) error {
		_, err := p.js.Publish(subject, data)
		return err
	}
	return p, nil
}

// Subject returns the NATS subject of a hub room.
func (p *NATSPublisher) Subject(roomID string) string {
	return p.prefix + "." + roomID
}

// BroadcastToRoom publishes message as JSON. Failures are logged and do not
// reach the caller.
func (p *NATSPublisher) BroadcastToRoom(roomID string, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		p.logger.Error("failed to marshal placement event", slog.String("room", roomID), slog.Any("error", err))
		return
	}

	subject := p.Subject(roomID)
	if err := p.publish(subject, data); err != nil {
		p.logger.Error("failed to publish placement event to NATS", slog.String("subject", subject), slog.Any("error", err))
	}
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

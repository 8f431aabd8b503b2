// Package pubsub delivers placement events to subscribers outside the
// websocket hub.
package pubsub

// Broadcaster is anything that accepts room-scoped events, such as
// brackets.Hub or NATSPublisher.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// Fanout sends every event to each of its broadcasters in order. Nil
// entries are skipped.
type Fanout []Broadcaster

func NewFanout(broadcasters ...Broadcaster) Fanout {
	out := make(Fanout, 0, len(broadcasters))
	for _, b := range broadcasters {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (f Fanout) BroadcastToRoom(roomID string, message interface{}) {
	for _, b := range f {
		b.BroadcastToRoom(roomID, message)
	}
}

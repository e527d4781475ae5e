// Package pubsub abstracts the real-time channel the backend pushes order
// events through. Any transport that can deliver named events on a topic
// satisfies Subscriber; the tracker never sees the wire protocol.
package pubsub

import (
	"context"
	"encoding/json"
)

// Message is one event delivered on a subscribed topic.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Handler func(Message)

// UnsubscribeFunc tears the subscription down. Calling it more than once is
// harmless.
type UnsubscribeFunc func()

type Subscriber interface {
	Subscribe(ctx context.Context, topic string, h Handler) (UnsubscribeFunc, error)
}

package pubsub

import (
	"context"
	"sync"
)

// Bus is an in-process Subscriber with a Publish side, used in tests and
// anywhere the real transport is not wired.
type Bus struct {
	mu   sync.Mutex
	subs map[string]map[int]Handler
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]Handler)}
}

func (b *Bus) Subscribe(_ context.Context, topic string, h Handler) (UnsubscribeFunc, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.next
	b.next++
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}, nil
}

// Publish delivers msg synchronously to every handler on topic.
func (b *Bus) Publish(topic string, msg Message) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(msg)
	}
}

// SubscriberCount reports how many handlers are registered on topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

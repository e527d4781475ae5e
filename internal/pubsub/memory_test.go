package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus(t *testing.T) {
	bus := NewBus()

	var got []Message
	unsub, err := bus.Subscribe(context.Background(), "order.SDM-001", func(m Message) {
		got = append(got, m)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, bus.SubscriberCount("order.SDM-001"))

	bus.Publish("order.SDM-001", Message{Event: "status.updated", Data: []byte(`{"status":"paid"}`)})
	bus.Publish("order.SDM-002", Message{Event: "status.updated", Data: []byte(`{"status":"shipped"}`)})

	require.Len(t, got, 1, "only the subscribed topic is delivered")
	assert.Equal(t, "status.updated", got[0].Event)

	unsub()
	assert.Equal(t, 0, bus.SubscriberCount("order.SDM-001"))

	bus.Publish("order.SDM-001", Message{Event: "status.updated"})
	assert.Len(t, got, 1, "no delivery after unsubscribe")

	// Unsubscribing twice is harmless.
	unsub()
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus()

	count := 0
	for i := 0; i < 3; i++ {
		_, err := bus.Subscribe(context.Background(), "t", func(Message) { count++ })
		require.NoError(t, err)
	}

	bus.Publish("t", Message{Event: "e"})
	assert.Equal(t, 3, count)
}

func TestDecodeFrameData(t *testing.T) {
	// Double-encoded pusher style: a JSON string containing JSON.
	out := decodeFrameData([]byte(`"{\"status\":\"paid\"}"`))
	assert.JSONEq(t, `{"status":"paid"}`, string(out))

	// Plain objects pass through.
	out = decodeFrameData([]byte(`{"status":"paid"}`))
	assert.JSONEq(t, `{"status":"paid"}`, string(out))

	assert.Empty(t, decodeFrameData(nil))
}

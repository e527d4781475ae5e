package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"sidomulyo-storefront/internal/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSSubscriber speaks the Pusher-style websocket protocol the backend's
// event broadcaster exposes: one connection per subscription, a subscribe
// frame naming the channel, then event frames with string-encoded data.
type WSSubscriber struct {
	host   string
	port   string
	appKey string
	dialer *websocket.Dialer
}

func NewWSSubscriber(host, port, appKey string) *WSSubscriber {
	return &WSSubscriber{
		host:   host,
		port:   port,
		appKey: appKey,
		dialer: websocket.DefaultDialer,
	}
}

type wsFrame struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (s *WSSubscriber) Subscribe(ctx context.Context, topic string, h Handler) (UnsubscribeFunc, error) {
	url := fmt.Sprintf("ws://%s:%s/app/%s?protocol=7", s.host, s.port, s.appKey)

	conn, _, err := s.dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial event socket: %w", err)
	}

	channel := "private-" + topic
	sub := wsFrame{Event: "pusher:subscribe"}
	sub.Data, _ = json.Marshal(map[string]string{"channel": channel})
	if err := conn.WriteJSON(sub); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	log := logger.FromCtx(ctx).With(zap.String("channel", channel))
	log.Info("subscribed to event socket")

	go func() {
		for {
			var frame wsFrame
			if err := conn.ReadJSON(&frame); err != nil {
				// Closed by Unsubscribe or the peer; either way we are done.
				log.Debug("event socket closed", zap.Error(err))
				return
			}

			// Protocol bookkeeping frames are not order events.
			if strings.HasPrefix(frame.Event, "pusher") {
				continue
			}
			if frame.Channel != "" && frame.Channel != channel {
				continue
			}

			h(Message{
				Event: strings.TrimPrefix(frame.Event, "order."),
				Data:  decodeFrameData(frame.Data),
			})
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			if err := conn.Close(); err != nil {
				log.Warn("failed to close event socket", zap.Error(err))
			}
		})
	}, nil
}

// decodeFrameData unwraps the double encoding pusher-compatible servers
// apply: event data arrives as a JSON string containing JSON.
func decodeFrameData(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return raw
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		return json.RawMessage(inner)
	}
	return raw
}

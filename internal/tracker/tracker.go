package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sidomulyo-storefront/internal/logger"
	"sidomulyo-storefront/internal/orders"
	"sidomulyo-storefront/internal/pubsub"

	"go.uber.org/zap"
)

// ProductionWindow is the fixed estimate shown while an order is being
// produced, counted from the record's last update.
const ProductionWindow = 4 * time.Hour

// EventStatusUpdated is the event type delivered on the per-order topic.
const EventStatusUpdated = "status.updated"

// Topic names the private per-order event channel.
func Topic(number string) string {
	return "order." + number
}

// Fetcher resolves an order by its public tracking number.
type Fetcher interface {
	Track(ctx context.Context, number string) (*orders.Order, error)
}

// Snapshot is a consistent view of the tracker's state for rendering.
type Snapshot struct {
	Number       string
	Status       orders.Status
	Step         Step
	Order        *orders.Order
	Remaining    time.Duration
	CountdownSet bool
}

// Tracker follows one order's lifecycle: an initial fetch, a live status
// subscription, and a countdown while the order is in production. Fetch
// responses and live events race by design; whichever arrives last wins,
// applied atomically as a full status replace.
type Tracker struct {
	fetch Fetcher
	subs  pubsub.Subscriber

	// OnChange, when set before Start, is called after every state change.
	OnChange func(Snapshot)

	now func() time.Time

	mu           sync.Mutex
	number       string
	order        *orders.Order
	status       orders.Status
	remaining    time.Duration
	countdownSet bool
	unsubscribe  pubsub.UnsubscribeFunc
	stopTick     chan struct{}
}

func New(fetch Fetcher, subs pubsub.Subscriber) *Tracker {
	return &Tracker{
		fetch: fetch,
		subs:  subs,
		now:   time.Now,
	}
}

// Start resolves the order and opens its event subscription, replacing any
// previous order being tracked. The countdown baseline is only ever set
// here: updated_at plus the production window, floored at zero.
func (t *Tracker) Start(ctx context.Context, number string) (*orders.Order, error) {
	t.Stop()

	ctx = logger.WithOrderNumber(ctx, number)
	log := logger.FromCtx(ctx)

	ord, err := t.fetch.Track(ctx, number)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.number = number
	t.order = ord
	t.status = ord.Status
	t.remaining = 0
	t.countdownSet = false

	if ord.Status == orders.StatusProcessing {
		deadline := ord.UpdatedAt.Add(ProductionWindow)
		remaining := deadline.Sub(t.now())
		if remaining < 0 {
			remaining = 0
		}
		t.remaining = remaining
		t.countdownSet = true
		log.Info("production countdown set",
			zap.Time("deadline", deadline),
			zap.Duration("remaining", remaining),
		)
	}

	startTick := t.countdownSet && t.remaining > 0
	if startTick {
		t.startCountdownLocked()
	}
	t.mu.Unlock()

	unsub, err := t.subs.Subscribe(ctx, Topic(number), t.handleEvent)
	if err != nil {
		// Without a subscription there is nothing to track; don't leave the
		// tick task running for callers that never reach Stop.
		t.mu.Lock()
		t.stopCountdownLocked()
		t.mu.Unlock()
		return ord, fmt.Errorf("failed to open status subscription: %w", err)
	}

	t.mu.Lock()
	t.unsubscribe = unsub
	t.mu.Unlock()

	log.Info("tracking started", zap.String("status", string(ord.Status)))
	t.notify()
	return ord, nil
}

// handleEvent applies a live status change. The event is trusted over the
// last fetch and replaces the status immediately. It never recomputes the
// countdown: only Start sets the baseline, so a live transition into
// processing runs without an estimate.
func (t *Tracker) handleEvent(msg pubsub.Message) {
	if msg.Event != EventStatusUpdated {
		return
	}

	var payload struct {
		Status orders.Status `json:"status"`
	}
	if err := json.Unmarshal(msg.Data, &payload); err != nil || payload.Status == "" {
		logger.L().Warn("dropping malformed status event", zap.Error(err))
		return
	}

	t.mu.Lock()
	prev := t.status
	t.status = payload.Status
	if t.order != nil {
		t.order.Status = payload.Status
	}

	if prev == orders.StatusProcessing && payload.Status != orders.StatusProcessing {
		t.stopCountdownLocked()
	}
	if payload.Status == orders.StatusProcessing && !t.countdownSet {
		// Known gap: the baseline only comes from the initial fetch, so an
		// order that enters production while being watched shows no estimate.
		logger.L().Warn("entered processing without countdown baseline",
			zap.String("order_number", t.number),
		)
	}
	t.mu.Unlock()

	logger.L().Info("order status updated",
		zap.String("order_number", t.number),
		zap.String("from", string(prev)),
		zap.String("to", string(payload.Status)),
	)
	t.notify()
}

// Tick advances the countdown by one second, floored at zero. It is a
// display concern only and goes inert once the order leaves processing.
func (t *Tracker) Tick() {
	t.mu.Lock()
	if t.status != orders.StatusProcessing || !t.countdownSet || t.remaining == 0 {
		t.mu.Unlock()
		return
	}

	t.remaining -= time.Second
	if t.remaining < 0 {
		t.remaining = 0
	}
	done := t.remaining == 0
	if done {
		t.stopCountdownLocked()
	}
	t.mu.Unlock()

	t.notify()
}

// startCountdownLocked owns the 1-second tick task. The goroutine exits when
// Stop is called or the countdown hits zero; the ticker never outlives the
// tracked order.
func (t *Tracker) startCountdownLocked() {
	stop := make(chan struct{})
	t.stopTick = stop

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.Tick()
			}
		}
	}()
}

func (t *Tracker) stopCountdownLocked() {
	if t.stopTick != nil {
		close(t.stopTick)
		t.stopTick = nil
	}
}

// Stop tears down the subscription and the tick task. Safe to call multiple
// times; at most one subscription is ever live per tracker.
func (t *Tracker) Stop() {
	t.mu.Lock()
	unsub := t.unsubscribe
	t.unsubscribe = nil
	t.stopCountdownLocked()
	t.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Snapshot returns a consistent view for rendering.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	step, _ := StepFor(t.status)
	return Snapshot{
		Number:       t.number,
		Status:       t.status,
		Step:         step,
		Order:        t.order,
		Remaining:    t.remaining,
		CountdownSet: t.countdownSet,
	}
}

func (t *Tracker) notify() {
	if t.OnChange != nil {
		t.OnChange(t.Snapshot())
	}
}

// FormatCountdown renders a remaining duration as zero-padded HH:MM:SS.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

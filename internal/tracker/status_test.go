package tracker

import (
	"strings"
	"testing"

	"sidomulyo-storefront/internal/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepFor(t *testing.T) {
	step, ok := StepFor(orders.StatusProcessing)
	require.True(t, ok)
	assert.Equal(t, "Sedang Diproduksi", step.Label)
	assert.NotEmpty(t, step.Animation)

	step, ok = StepFor(orders.StatusCanceled)
	require.True(t, ok)
	assert.Equal(t, "Dibatalkan", step.Label)
	assert.Empty(t, step.Animation, "canceled has no animation asset")

	_, ok = StepFor(orders.Status("refunded"))
	assert.False(t, ok)
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(orders.StatusPending))
	assert.Equal(t, 5, Index(orders.StatusCompleted))
	assert.Equal(t, -1, Index(orders.StatusCanceled))

	// The progression is strictly ordered.
	prev := -1
	for _, s := range []orders.Status{
		orders.StatusPending,
		orders.StatusAwaitingVerification,
		orders.StatusPaid,
		orders.StatusProcessing,
		orders.StatusShipped,
		orders.StatusCompleted,
	} {
		idx := Index(s)
		assert.Greater(t, idx, prev)
		prev = idx
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(orders.StatusCompleted))
	assert.True(t, Terminal(orders.StatusCanceled))
	assert.False(t, Terminal(orders.StatusPending))
	assert.False(t, Terminal(orders.StatusShipped))
}

func TestShareLink(t *testing.T) {
	link := ShareLink("https://sidomulyo.example", "SDM-001")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	assert.Contains(t, link, "SDM-001")
	// The tracking URL is embedded, query-escaped.
	assert.Contains(t, link, "sidomulyo.example%2Forder%2Ftracking%2FSDM-001")
}

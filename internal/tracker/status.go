package tracker

import "sidomulyo-storefront/internal/orders"

// Step is the presentation descriptor for one lifecycle status: what to
// show, which animation asset to play.
type Step struct {
	Status    orders.Status
	Label     string
	Icon      string
	Animation string // lottie asset path, empty when the status has none
}

// flow is the fixed, ordered progression. canceled sits outside the
// progression: reachable from any non-terminal status, always terminal.
var flow = []Step{
	{orders.StatusPending, "Menunggu Pembayaran", "💸", "animations/Payment_verify_loader.json"},
	{orders.StatusAwaitingVerification, "Menunggu Verifikasi", "🕓", "animations/Clock_loop.json"},
	{orders.StatusPaid, "Pembayaran Diterima", "✅", "animations/payment_sucess.json"},
	{orders.StatusProcessing, "Sedang Diproduksi", "⚙️", "animations/Man_printing_flex.json"},
	{orders.StatusShipped, "Sedang Dikirim", "🚚", "animations/Delivery_truck.json"},
	{orders.StatusCompleted, "Selesai", "🎉", "animations/asesoria.json"},
}

var canceledStep = Step{orders.StatusCanceled, "Dibatalkan", "❌", ""}

// StepFor maps a status to its presentation descriptor. Unknown statuses
// report ok=false so the raw status string can be displayed instead.
func StepFor(s orders.Status) (Step, bool) {
	if s == orders.StatusCanceled {
		return canceledStep, true
	}
	for _, step := range flow {
		if step.Status == s {
			return step, true
		}
	}
	return Step{}, false
}

// Steps returns the ordered progression for timeline rendering.
func Steps() []Step {
	out := make([]Step, len(flow))
	copy(out, flow)
	return out
}

// Index is a status's position in the ordered progression, -1 for canceled
// and unknown statuses.
func Index(s orders.Status) int {
	for i, step := range flow {
		if step.Status == s {
			return i
		}
	}
	return -1
}

// Terminal reports whether no further transitions are expected.
func Terminal(s orders.Status) bool {
	return s == orders.StatusCompleted || s == orders.StatusCanceled
}

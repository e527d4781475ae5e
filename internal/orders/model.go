package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending              Status = "pending"
	StatusAwaitingVerification Status = "awaiting_verification"
	StatusPaid                 Status = "paid"
	StatusProcessing           Status = "processing"
	StatusShipped              Status = "shipped"
	StatusCompleted            Status = "completed"
	StatusCanceled             Status = "canceled"
)

type Item struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// Order is the backend-owned record. The client holds a read-only,
// eventually consistent projection of it.
type Order struct {
	ID              int64           `json:"id"`
	Number          string          `json:"number"`
	Status          Status          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	Items           []Item          `json:"items"`
	UpdatedAt       time.Time       `json:"updated_at"`
	PaymentProofURL string          `json:"payment_proof,omitempty"`
}

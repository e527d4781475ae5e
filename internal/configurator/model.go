package configurator

import "github.com/shopspring/decimal"

const (
	// MaxDesignSize is the upload ceiling for a design artifact.
	MaxDesignSize = 10 << 20 // 10 MiB

	// MaxNoteLen is the order note ceiling in characters.
	MaxNoteLen = 500
)

var allowedDesignTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// Axis selects which draft dimension a value applies to.
type Axis int

const (
	AxisLength Axis = iota
	AxisWidth
)

// DesignFile is the customer's uploaded artwork. Size is len(Data).
type DesignFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// SubmitMode distinguishes "keep browsing" from "straight to checkout".
type SubmitMode int

const (
	ModeAddToCart SubmitMode = iota
	ModeBuyNow
)

// Submission is the packaged draft handed to the order-creation endpoint.
type Submission struct {
	ProductID int64
	Quantity  int
	Length    decimal.Decimal
	Width     decimal.Decimal
	Variants  []SubmissionVariant
	Note      string
	Design    *DesignFile
}

// SubmissionVariant mirrors the backend's serialized variant shape.
type SubmissionVariant struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

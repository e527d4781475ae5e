package configurator

import (
	"context"
	"sync"

	"sidomulyo-storefront/internal/auth"
	"sidomulyo-storefront/internal/catalog"
	"sidomulyo-storefront/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderCreator is the external order-creation collaborator. It receives the
// packaged draft and returns the new order's identifier.
type OrderCreator interface {
	CreateOrder(ctx context.Context, sub Submission) (int64, error)
}

// Draft is the mutable configuration of one order line for a single product
// page session. Derived values (area, total) are always recomputed from the
// current fields, never cached.
type Draft struct {
	mu sync.Mutex

	product  catalog.Product
	quantity int
	length   decimal.Decimal
	width    decimal.Decimal
	variants []catalog.Variant // insertion order, unique by id
	design   *DesignFile
	note     string

	noteErr   *ValidationError
	designErr *ValidationError

	inFlight bool
}

// New opens a draft for a product page. Quantity and both dimensions start
// at 1, matching the order form defaults.
func New(product catalog.Product) *Draft {
	return &Draft{
		product:  product,
		quantity: 1,
		length:   decimal.NewFromInt(1),
		width:    decimal.NewFromInt(1),
	}
}

// SetDimension stores a dimension as entered. Negative values are kept but
// contribute zero area; the raw value may still be shown in the input.
func (d *Draft) SetDimension(axis Axis, value decimal.Decimal) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if axis == AxisLength {
		d.length = value
	} else {
		d.width = value
	}
}

// SetDimensionInput parses free-form user input. Anything non-numeric is
// coerced to zero rather than rejected.
func (d *Draft) SetDimensionInput(axis Axis, raw string) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		value = decimal.Zero
	}
	d.SetDimension(axis, value)
}

// AddQuantity applies a +/- step. Quantity never drops below 1 and has no
// declared ceiling.
func (d *Draft) AddQuantity(delta int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.quantity += delta
	if d.quantity < 1 {
		d.quantity = 1
	}
}

func (d *Draft) SetQuantity(q int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if q < 1 {
		q = 1
	}
	d.quantity = q
}

// ToggleVariant adds the variant if absent, removes it if present (matched
// by id). Selection order is preserved for display.
func (d *Draft) ToggleVariant(v catalog.Variant) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, sel := range d.variants {
		if sel.ID == v.ID {
			d.variants = append(d.variants[:i], d.variants[i+1:]...)
			return
		}
	}
	d.variants = append(d.variants, v)
}

// AttachDesign validates the file eagerly. On failure the previous artifact
// is dropped and the error is kept until a valid file replaces it.
func (d *Draft) AttachDesign(f DesignFile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !allowedDesignTypes[f.ContentType] {
		d.design = nil
		d.designErr = &ValidationError{
			Field:  "design_file",
			Reason: "format file tidak didukung. gunakan JPG, PNG, atau PDF",
		}
		return d.designErr
	}
	if len(f.Data) > MaxDesignSize {
		d.design = nil
		d.designErr = &ValidationError{
			Field:  "design_file",
			Reason: "ukuran file maksimal 10 MB",
		}
		return d.designErr
	}

	d.design = &f
	d.designErr = nil
	return nil
}

// RemoveDesign discards the attached artifact and any outstanding error.
func (d *Draft) RemoveDesign() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.design = nil
	d.designErr = nil
}

// SetNote always stores the text so the user is never retroactively
// truncated; an over-length note blocks submission until edited down.
func (d *Draft) SetNote(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.note = text
	if len([]rune(text)) > MaxNoteLen {
		d.noteErr = &ValidationError{
			Field:  "order_note",
			Reason: "keterangan maksimal 500 karakter",
		}
		return d.noteErr
	}
	d.noteErr = nil
	return nil
}

func (d *Draft) Product() catalog.Product { return d.product }

func (d *Draft) Quantity() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.quantity
}

func (d *Draft) Dimensions() (length, width decimal.Decimal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.length, d.width
}

func (d *Draft) Note() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.note
}

func (d *Draft) Design() *DesignFile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.design
}

func (d *Draft) SelectedVariants() []catalog.Variant {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]catalog.Variant, len(d.variants))
	copy(out, d.variants)
	return out
}

// Area is max(length,0) * max(width,0) in square meters.
func (d *Draft) Area() decimal.Decimal {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.areaLocked()
}

func (d *Draft) areaLocked() decimal.Decimal {
	length := d.length
	if length.IsNegative() {
		length = decimal.Zero
	}
	width := d.width
	if width.IsNegative() {
		width = decimal.Zero
	}
	return length.Mul(width)
}

// Total is unitPrice * area * quantity plus the flat surcharge of every
// selected variant. Pure function of the current fields.
func (d *Draft) Total() decimal.Decimal {
	d.mu.Lock()
	defer d.mu.Unlock()

	total := d.product.UnitPrice.
		Mul(d.areaLocked()).
		Mul(decimal.NewFromInt(int64(d.quantity)))

	for _, v := range d.variants {
		total = total.Add(v.Surcharge)
	}
	return total
}

// Validate returns the first outstanding validation error, if any.
func (d *Draft) Validate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.validateLocked()
}

func (d *Draft) validateLocked() error {
	if d.noteErr != nil {
		return d.noteErr
	}
	if d.designErr != nil {
		return d.designErr
	}
	return nil
}

// Submit packages the draft and sends it to the order-creation collaborator.
// It fails before any network traffic when a validation error is outstanding
// or no credential is available, and allows at most one in-flight submission.
func (d *Draft) Submit(ctx context.Context, mode SubmitMode, tokens auth.TokenSource, creator OrderCreator) (int64, error) {
	d.mu.Lock()
	if d.inFlight {
		d.mu.Unlock()
		return 0, ErrSubmissionInFlight
	}
	if err := d.validateLocked(); err != nil {
		d.mu.Unlock()
		return 0, err
	}
	if tokens == nil {
		d.mu.Unlock()
		return 0, ErrAuthenticationRequired
	}
	if _, err := tokens.Token(); err != nil {
		d.mu.Unlock()
		return 0, ErrAuthenticationRequired
	}

	sub := d.submissionLocked()
	d.inFlight = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.inFlight = false
		d.mu.Unlock()
	}()

	log := logger.FromCtx(ctx).With(
		zap.Int64("product_id", sub.ProductID),
		zap.Int("quantity", sub.Quantity),
		zap.Int("variant_count", len(sub.Variants)),
		zap.Bool("buy_now", mode == ModeBuyNow),
	)
	log.Info("submitting order draft")

	orderID, err := creator.CreateOrder(ctx, sub)
	if err != nil {
		log.Warn("order submission rejected", zap.Error(err))
		return 0, err
	}

	log.Info("order created", zap.Int64("order_id", orderID))
	return orderID, nil
}

// Reset clears the draft back to its initial state after an add-to-cart
// submission, keeping the product reference.
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.quantity = 1
	d.length = decimal.NewFromInt(1)
	d.width = decimal.NewFromInt(1)
	d.variants = nil
	d.design = nil
	d.note = ""
	d.noteErr = nil
	d.designErr = nil
}

func (d *Draft) submissionLocked() Submission {
	variants := make([]SubmissionVariant, 0, len(d.variants))
	for _, v := range d.variants {
		variants = append(variants, SubmissionVariant{
			ID:    v.ID,
			Name:  v.Name,
			Price: v.Surcharge,
		})
	}

	return Submission{
		ProductID: d.product.ID,
		Quantity:  d.quantity,
		Length:    d.length,
		Width:     d.width,
		Variants:  variants,
		Note:      d.note,
		Design:    d.design,
	}
}

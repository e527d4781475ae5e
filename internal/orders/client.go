package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"sidomulyo-storefront/internal/configurator"
	"sidomulyo-storefront/internal/logger"
	"sidomulyo-storefront/internal/transport"

	"go.uber.org/zap"
)

// Client talks to the order endpoints. Track is public; everything else
// needs a bearer credential.
type Client struct {
	api *transport.Client
}

func NewClient(api *transport.Client) *Client {
	return &Client{api: api}
}

// CreateOrder submits a packaged draft as a multipart form and returns the
// new order id. Implements configurator.OrderCreator.
func (c *Client) CreateOrder(ctx context.Context, sub configurator.Submission) (int64, error) {
	variantsJSON, err := json.Marshal(sub.Variants)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize variants: %w", err)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"product_id": fmt.Sprintf("%d", sub.ProductID),
		"quantity":   fmt.Sprintf("%d", sub.Quantity),
		"length":     sub.Length.String(),
		"width":      sub.Width.String(),
		"variants":   string(variantsJSON),
		"order_note": sub.Note,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return 0, fmt.Errorf("failed to build order form: %w", err)
		}
	}

	if sub.Design != nil {
		if err := writeFilePart(form, "design_file", sub.Design.Name, sub.Design.ContentType, sub.Design.Data); err != nil {
			return 0, fmt.Errorf("failed to attach design file: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize order form: %w", err)
	}

	env, err := c.api.Do(ctx, http.MethodPost, "/orders", transport.RequestOptions{
		Body:        &buf,
		ContentType: form.FormDataContentType(),
		Authed:      true,
	})
	if err != nil {
		return 0, err
	}

	var payload struct {
		Order struct {
			ID int64 `json:"id"`
		} `json:"order"`
	}
	if err := env.Decode(&payload); err != nil {
		return 0, err
	}

	return payload.Order.ID, nil
}

// Track looks up an order by its public tracking number. No credential
// required; this is the one order endpoint open to logged-out users.
func (c *Client) Track(ctx context.Context, number string) (*Order, error) {
	var ord Order
	err := c.api.GetJSON(ctx, "/orders/track/"+number, false, &ord)
	if err != nil {
		var apiErr *transport.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to track order %s: %w", number, err)
	}

	logger.FromCtx(ctx).Debug("order tracked",
		zap.String("number", ord.Number),
		zap.String("status", string(ord.Status)),
	)
	return &ord, nil
}

// Get fetches the caller's own order by id.
func (c *Client) Get(ctx context.Context, id int64) (*Order, error) {
	var ord Order
	err := c.api.GetJSON(ctx, fmt.Sprintf("/orders/%d", id), true, &ord)
	if err != nil {
		var apiErr *transport.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return &ord, nil
}

// Pay confirms manual payment for the order and returns the updated record.
func (c *Client) Pay(ctx context.Context, id int64) (*Order, error) {
	env, err := c.api.Do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/pay", id), transport.RequestOptions{
		Authed: true,
	})
	if err != nil {
		return nil, err
	}

	var ord Order
	if err := env.Decode(&ord); err != nil {
		return nil, err
	}
	return &ord, nil
}

// UploadProof attaches a bank-transfer receipt to the order and returns the
// updated record.
func (c *Client) UploadProof(ctx context.Context, id int64, filename, contentType string, data []byte) (*Order, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := writeFilePart(form, "payment_proof", filename, contentType, data); err != nil {
		return nil, fmt.Errorf("failed to attach payment proof: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize proof form: %w", err)
	}

	env, err := c.api.Do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/upload-proof", id), transport.RequestOptions{
		Body:        &buf,
		ContentType: form.FormDataContentType(),
		Authed:      true,
	})
	if err != nil {
		return nil, err
	}

	var ord Order
	if err := env.Decode(&ord); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("payment proof uploaded",
		zap.Int64("order_id", id),
		zap.String("file", filename),
	)
	return &ord, nil
}

// writeFilePart adds a file field with an explicit Content-Type, which the
// backend uses for MIME validation on its side.
func writeFilePart(form *multipart.Writer, field, filename, contentType string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(field), escapeQuotes(filename)))
	h.Set("Content-Type", contentType)

	part, err := form.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}

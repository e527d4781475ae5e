package catalog

import (
	"context"
	"errors"
	"fmt"

	"sidomulyo-storefront/internal/logger"
	"sidomulyo-storefront/internal/transport"

	"go.uber.org/zap"
)

// Client reads the public product catalog. None of these endpoints require
// a credential.
type Client struct {
	api        *transport.Client
	backendURL string
}

func NewClient(api *transport.Client, backendURL string) *Client {
	return &Client{api: api, backendURL: backendURL}
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var payload listPayload[productDTO]
	if err := c.api.GetJSON(ctx, "/products", false, &payload); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	products := make([]Product, 0, len(payload.Items))
	for _, d := range payload.Items {
		products = append(products, d.toProduct(c.backendURL))
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*Product, error) {
	var dto productDTO
	err := c.api.GetJSON(ctx, fmt.Sprintf("/products/%d", id), false, &dto)
	if err != nil {
		var apiErr *transport.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}

	p := dto.toProduct(c.backendURL)

	logger.FromCtx(ctx).Debug("product loaded",
		zap.Int64("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("variant_count", len(p.Variants)),
	)
	return &p, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var payload listPayload[categoryDTO]
	if err := c.api.GetJSON(ctx, "/categories", false, &payload); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	categories := make([]Category, 0, len(payload.Items))
	for _, d := range payload.Items {
		categories = append(categories, d.toCategory(c.backendURL))
	}
	return categories, nil
}

// CategoryProducts resolves a category by slug together with its products.
// The backend has no single-category endpoint, so the listing endpoint
// doubles as the lookup.
func (c *Client) CategoryProducts(ctx context.Context, slug string) (*Category, []Product, error) {
	var payload struct {
		Category *categoryDTO            `json:"category"`
		Products listPayload[productDTO] `json:"products"`
	}
	err := c.api.GetJSON(ctx, "/categories/"+slug+"/products", false, &payload)
	if err != nil {
		var apiErr *transport.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, nil, ErrCategoryNotFound
		}
		return nil, nil, fmt.Errorf("failed to load category %q: %w", slug, err)
	}
	if payload.Category == nil {
		return nil, nil, ErrCategoryNotFound
	}

	category := payload.Category.toCategory(c.backendURL)
	products := make([]Product, 0, len(payload.Products.Items))
	for _, d := range payload.Products.Items {
		products = append(products, d.toProduct(c.backendURL))
	}
	return &category, products, nil
}

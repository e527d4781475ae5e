package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type categoryDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ImageURL    *string `json:"image_url"`
	Icon        *string `json:"icon"`
}

type productDTO struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	Image          *string         `json:"image"`
	ImageURL       *string         `json:"image_url"`
	Description    *string         `json:"description"`
	Active         bool            `json:"active"`
	Category       *categoryDTO    `json:"category"`
	Variants       []Variant       `json:"variants"`
	Specifications json.RawMessage `json:"specifications"`
}

// listPayload tolerates both shapes the backend returns for collections:
// a plain array in data, or a paginator object with a nested data array.
type listPayload[T any] struct {
	Items []T
}

func (p *listPayload[T]) UnmarshalJSON(b []byte) error {
	var plain []T
	if err := json.Unmarshal(b, &plain); err == nil {
		p.Items = plain
		return nil
	}
	var paged struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &paged); err != nil {
		return err
	}
	p.Items = paged.Data
	return nil
}

func (d categoryDTO) toCategory(backendURL string) Category {
	return Category{
		ID:          d.ID,
		Name:        d.Name,
		Slug:        d.Slug,
		Description: strVal(d.Description),
		ImageURL:    resolveImageURL(backendURL, d.Image, d.ImageURL),
		Icon:        strVal(d.Icon),
	}
}

func (d productDTO) toProduct(backendURL string) Product {
	p := Product{
		ID:          d.ID,
		Name:        d.Name,
		Slug:        d.Slug,
		UnitPrice:   d.Price,
		Stock:       d.Stock,
		ImageURL:    resolveImageURL(backendURL, d.Image, d.ImageURL),
		Description: strVal(d.Description),
		Active:      d.Active,
		Variants:    d.Variants,
	}

	if d.Category != nil {
		c := d.Category.toCategory(backendURL)
		p.Category = &c
	}

	// Specifications arrive either as an object or a pre-serialized string.
	if len(d.Specifications) > 0 {
		var specs map[string]any
		if err := json.Unmarshal(d.Specifications, &specs); err == nil {
			p.Specifications = specs
		} else {
			var raw string
			if err := json.Unmarshal(d.Specifications, &raw); err == nil && raw != "" {
				var nested map[string]any
				if err := json.Unmarshal([]byte(raw), &nested); err == nil {
					p.Specifications = nested
				}
			}
		}
	}

	return p
}

// resolveImageURL prefers the backend-provided absolute URL and falls back
// to joining the relative storage path onto the backend host.
func resolveImageURL(backendURL string, image, imageURL *string) string {
	if imageURL != nil && *imageURL != "" {
		return *imageURL
	}
	if image != nil && *image != "" {
		return strings.TrimRight(backendURL, "/") + "/" + strings.TrimLeft(*image, "/")
	}
	return ""
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

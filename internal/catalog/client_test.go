package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sidomulyo-storefront/internal/transport"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(transport.New(srv.URL, nil), "http://backend.example")
}

func TestClient_Product(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/7", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"success": true,
				"data": {
					"id": 7,
					"name": "Spanduk Flexi",
					"slug": "spanduk-flexi",
					"price": 50000,
					"stock": 120,
					"image": "storage/products/7.jpg",
					"active": true,
					"variants": [
						{"id": 1, "name": "Mata Ayam", "price": 10000}
					],
					"specifications": {"bahan": "flexi 280gsm"}
				}
			}`))
		})

		p, err := client.Product(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Spanduk Flexi", p.Name)
		assert.True(t, decimal.NewFromInt(50000).Equal(p.UnitPrice))
		assert.Equal(t, "http://backend.example/storage/products/7.jpg", p.ImageURL,
			"relative image path resolved against the backend host")
		require.Len(t, p.Variants, 1)
		assert.True(t, decimal.NewFromInt(10000).Equal(p.Variants[0].Surcharge))
		assert.Equal(t, "flexi 280gsm", p.Specifications["bahan"])
	})

	t.Run("AbsoluteImageURLPreferred", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"success": true,
				"data": {"id": 7, "name": "Spanduk", "price": 50000,
					"image": "storage/products/7.jpg",
					"image_url": "https://cdn.example/7.jpg"}
			}`))
		})

		p, err := client.Product(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/7.jpg", p.ImageURL)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success": false, "message": "produk tidak ditemukan"}`))
		})

		_, err := client.Product(context.Background(), 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestClient_Products(t *testing.T) {
	t.Run("PlainArray", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "data": [
				{"id": 1, "name": "A", "price": 1000},
				{"id": 2, "name": "B", "price": 2000}
			]}`))
		})

		products, err := client.Products(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("PaginatedWrapper", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "data": {"data": [
				{"id": 1, "name": "A", "price": 1000}
			], "current_page": 1}}`))
		})

		products, err := client.Products(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "A", products[0].Name)
	})
}

func TestClient_CategoryProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/categories/spanduk/products", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "data": {
				"category": {"id": 3, "name": "Spanduk", "slug": "spanduk"},
				"products": [{"id": 7, "name": "Spanduk Flexi", "price": 50000}]
			}}`))
		})

		category, products, err := client.CategoryProducts(context.Background(), "spanduk")
		require.NoError(t, err)
		assert.Equal(t, "Spanduk", category.Name)
		assert.Len(t, products, 1)
	})

	t.Run("MissingCategoryIsNotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "data": {"products": []}}`))
		})

		_, _, err := client.CategoryProducts(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

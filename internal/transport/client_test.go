package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sidomulyo-storefront/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do(t *testing.T) {
	t.Run("SetsRequestIDAndAccept", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`{"success": true}`))
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		env, err := c.Do(context.Background(), http.MethodGet, "/ping", RequestOptions{})
		require.NoError(t, err)
		assert.True(t, env.Success)
	})

	t.Run("AuthedWithoutCredentialFailsBeforeNetwork", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
		}))
		defer srv.Close()

		c := New(srv.URL, auth.StaticToken(""))
		_, err := c.Do(context.Background(), http.MethodGet, "/orders/1", RequestOptions{Authed: true})
		assert.ErrorIs(t, err, auth.ErrNoCredential)
		assert.Zero(t, hits)
	})

	t.Run("NonJSONBodyIsBadResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>502</html>`))
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		_, err := c.Do(context.Background(), http.MethodGet, "/products", RequestOptions{})
		assert.ErrorIs(t, err, ErrBadResponse)
	})

	t.Run("SuccessFalseBecomesAPIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "message": "nope", "errors": {"f": ["bad"]}}`))
		}))
		defer srv.Close()

		c := New(srv.URL, nil)
		_, err := c.Do(context.Background(), http.MethodGet, "/x", RequestOptions{})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "nope", apiErr.Message)
		assert.Equal(t, []string{"bad"}, apiErr.Fields["f"])
	})
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "nope", (&APIError{Status: 400, Message: "nope"}).Error())
	assert.Equal(t, "bad", (&APIError{Status: 422, Fields: map[string][]string{"f": {"bad"}}}).Error())
	assert.Equal(t, "request failed with status 500", (&APIError{Status: 500}).Error())
	assert.True(t, (&APIError{Status: 404}).NotFound())
}

func TestEnvelope_Decode(t *testing.T) {
	env := &Envelope{Data: []byte(`{"id": 5}`)}

	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, env.Decode(&out))
	assert.Equal(t, 5, out.ID)

	bad := &Envelope{Data: []byte(`"not an object"`)}
	assert.ErrorIs(t, bad.Decode(&out), ErrBadResponse)

	empty := &Envelope{}
	assert.NoError(t, empty.Decode(&out))
}

package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sidomulyo-storefront/internal/auth"
	"sidomulyo-storefront/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Outbound budget for a browser-like client hammering list endpoints.
const (
	limitOutbound = rate.Limit(20)
	burstOutbound = 40
)

// Client is the shared REST client for the marketplace API. It owns bearer
// auth, outbound rate limiting and decoding of the uniform response envelope.
type Client struct {
	base       string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     auth.TokenSource
}

func New(baseURL string, tokens auth.TokenSource) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: logger.RoundTripper{},
		},
		limiter: rate.NewLimiter(limitOutbound, burstOutbound),
		tokens:  tokens,
	}
}

// RequestOptions shape one API call beyond method and path.
type RequestOptions struct {
	Body        io.Reader
	ContentType string
	Authed      bool
}

// Do performs one API call and returns the decoded envelope. A non-2xx
// status or success=false becomes an *APIError; an unparseable body becomes
// ErrBadResponse. Authed calls fail with auth.ErrNoCredential before any
// network traffic when no credential is available.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions) (*Envelope, error) {
	var bearer string
	if opts.Authed {
		if c.tokens == nil {
			return nil, auth.ErrNoCredential
		}
		token, err := c.tokens.Token()
		if err != nil {
			return nil, err
		}
		bearer = token
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, opts.Body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		logger.FromCtx(ctx).Warn("non-JSON response from backend",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
		)
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: env.Message,
			Fields:  env.Errors,
		}
	}

	return &env, nil
}

// GetJSON fetches path and decodes the envelope's data payload into out.
func (c *Client) GetJSON(ctx context.Context, path string, authed bool, out any) error {
	env, err := c.Do(ctx, http.MethodGet, path, RequestOptions{Authed: authed})
	if err != nil {
		return err
	}
	return env.Decode(out)
}

package logger

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoundTripper tags every outbound request with an X-Request-ID and logs the
// exchange. It wraps the transport actually doing the call.
type RoundTripper struct {
	Next http.RoundTripper
}

func (rt RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	next := rt.Next
	if next == nil {
		next = http.DefaultTransport
	}

	reqID := RequestIDFrom(r.Context())
	if reqID == "" {
		reqID = uuid.New().String()
	}
	r.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	log := FromCtx(r.Context())
	if RequestIDFrom(r.Context()) == "" {
		log = log.With(zap.String("request_id", reqID))
	}
	log = log.With(
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	resp, err := next.RoundTrip(r)
	if err != nil {
		log.Warn("outbound request failed",
			zap.Duration("duration_ms", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("outbound request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration_ms", time.Since(start)),
	)
	return resp, nil
}

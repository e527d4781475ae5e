package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey   ctxKey = "request_id"
	orderNumberKey ctxKey = "order_number"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// WithOrderNumber scopes all logs derived from ctx to one tracked order.
func WithOrderNumber(ctx context.Context, number string) context.Context {
	return context.WithValue(ctx, orderNumberKey, number)
}

func OrderNumberFrom(ctx context.Context) string {
	if v := ctx.Value(orderNumberKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with request_id and order_number automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if number := OrderNumberFrom(ctx); number != "" {
		l = l.With(zap.String("order_number", number))
	}
	return l
}

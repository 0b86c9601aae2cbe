package utils

import (
	"context"
	"glamslot-service/internal/pkg/constvars"
)

// GetRequestID returns the request id stored by the request id middleware, or "".
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// WithRequestID carries the request id into a detached usecase context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

package observability

import (
	"context"
	"time"
)

type requestIDKey struct{}
type requestStartTimeKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func WithRequestStartTime(ctx context.Context, start time.Time) context.Context {
	return context.WithValue(ctx, requestStartTimeKey{}, start)
}

func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

func GetRequestStartTime(ctx context.Context) (time.Time, bool) {
	v, ok := ctx.Value(requestStartTimeKey{}).(time.Time)
	return v, ok
}

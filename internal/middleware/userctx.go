package middleware

import (
	"context"

	"github.com/atopal/blog-backend/internal/authz"
)

type callerKey struct{}

func WithCaller(ctx context.Context, c authz.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the request identity; the zero value is anonymous.
func CallerFrom(ctx context.Context) authz.Caller {
	if v := ctx.Value(callerKey{}); v != nil {
		if c, ok := v.(authz.Caller); ok {
			return c
		}
	}
	return authz.Anonymous
}

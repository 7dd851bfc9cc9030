package mqheader

import (
	"context"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/correlationid"
)

// BuildHeaders creates the application headers for a message from ctx.
// Trace context is injected by the kafka client hooks, not here.
func BuildHeaders(ctx context.Context) map[string]string {
	headers := map[string]string{}

	if correlationID, ok := correlationid.FromContext(ctx); ok {
		headers[correlationid.Header] = correlationID
	}

	return headers
}

// ExtractContextFromHeaders puts the correlation ID found in headers into ctx.
func ExtractContextFromHeaders(ctx context.Context, headers map[string]string) context.Context {
	if correlationID, ok := headers[correlationid.Header]; ok {
		ctx = correlationid.NewContext(ctx, correlationID)
	}

	return ctx
}

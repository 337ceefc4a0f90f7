package middleware

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linkstash/internal/handlers"
)

// ClientIDHeader carries the opaque client identifier. How callers derive
// the value is outside this service; it is only ever compared, never
// interpreted.
const ClientIDHeader = "X-Client-Id"

// ClientID is a middleware that copies the opaque client identifier from
// the request header into the request context.
func ClientID(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		newCtx := handlers.ContextWithClientID(ctx.Context(), ctx.Header(ClientIDHeader))
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

// Package ctxutil carries request-scoped values through context.Context and
// *gin.Context alike.
//
// Values set on a context that embeds a *gin.Context are mirrored into the gin
// keys, so handlers and middlewares see the same data:
//
//	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	ctx = ctxutil.SetUserID(ctx, subject)
//
// Detached contexts keep request values but outlive cancellation:
//
//	ctx, cancel := ctxutil.WithAsyncContext(ctx, 5*time.Second)
//	defer cancel()
package ctxutil

// Package ctxkeys holds the fiber.Ctx locals keys shared between the
// upgrade middleware and the WebSocket handler.
package ctxkeys

// ParentCtxKey carries the request-bound context.Context across the
// WebSocket upgrade.
const ParentCtxKey = "parentCtx"

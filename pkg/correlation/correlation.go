package correlation

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// CorrelationIDKey is the context key for storing correlation IDs.
const CorrelationIDKey contextKey = "correlation-id"

// WithCorrelationID attaches a correlation ID to ctx. root.go's
// PersistentPreRunE calls this once per CLI invocation so that every
// auditLogger.Record call a single protect/recover/split/reconstruct/attack
// command makes — including the multiple failure-path records in
// recover-patient — shares one ID instead of each minting its own.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// GetCorrelationID retrieves the correlation ID from context.
// Returns an empty string if no correlation ID is found.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// NewID generates a new UUID v4 correlation ID.
func NewID() string {
	return uuid.New().String()
}

// GetOrGenerate retrieves the correlation ID root.go attached to ctx, or
// mints one on the spot if a command is invoked in a context that never
// went through PersistentPreRunE (as in pkg/audit's own tests).
func GetOrGenerate(ctx context.Context) string {
	if id := GetCorrelationID(ctx); id != "" {
		return id
	}
	return NewID()
}

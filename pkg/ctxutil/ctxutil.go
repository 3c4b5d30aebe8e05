// Package ctxutil carries the acting user and the operation ID through
// service calls.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey      ctxKey = "user_id"
	operationIDKey ctxKey = "op_id"
)

// WithUserID stores the acting user in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the acting user from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithOperationID tags the context with an ID shared by every log line of
// one CLI invocation.
func WithOperationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, operationIDKey, id)
}

// OperationIDFromCtx returns the operation ID, or "" if absent.
func OperationIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(operationIDKey).(string)
	return id
}

// NewOperationID returns a short random ID for WithOperationID.
func NewOperationID() string {
	return uuid.NewString()[:8]
}

package utils

import (
	"context"

	"github.com/google/uuid"
)

type rqIDKey struct{}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, ok := ctx.Value(rqIDKey{}).(string)
	if !ok {
		return ""
	}
	return rqID
}

// CreateCtxWithRqID derives a context carrying a fresh request ID, one per
// polling cycle, so all logs of a cycle can be correlated.
func CreateCtxWithRqID(ctx context.Context) context.Context {
	return context.WithValue(ctx, rqIDKey{}, uuid.NewString())
}

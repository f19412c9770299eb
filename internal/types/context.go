package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserPhone ContextKey = "ctx_user_phone"
)

// GetUserPhone returns the phone number of the authenticated user, if any.
// The session middleware populates this from the session store.
func GetUserPhone(ctx context.Context) string {
	if phone, ok := ctx.Value(CtxUserPhone).(string); ok {
		return phone
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithUserPhone returns a child context carrying the authenticated user's phone.
func WithUserPhone(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, CtxUserPhone, phone)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	voterIDKey   ctxKey = "voter_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// WithVoterID stores the authenticated account ID in the context.
func WithVoterID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, voterIDKey, id)
}

// VoterIDFromCtx extracts the account ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func VoterIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(voterIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the authenticated account role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the account role from the context.
// Returns an empty string if absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

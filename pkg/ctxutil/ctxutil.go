// Package ctxutil carries request-scoped identity and tracing values through
// context.Context. Middleware writes them; services and loggers read them.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	roleKey      struct{}
	requestIDKey struct{}
)

// WithIdentity stores the authenticated caller and the role claimed in their
// token. The role is advisory; services that gate on it re-read the user.
func WithIdentity(ctx context.Context, id uuid.UUID, role string) context.Context {
	return WithRole(WithUserID(ctx, id), role)
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns false for anonymous requests, including a stored uuid.Nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromCtx returns "" for anonymous requests.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey{}).(string)
	return role
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside the RequestID middleware.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

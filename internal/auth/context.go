package auth

import "context"

// contextKey is a private type so the identity key cannot collide.
type contextKey string

const identityKey contextKey = "auth_identity"

// Identity is the per-request auth annotation: either unauthenticated (zero
// value) or authenticated with the subject id and email from a verified token.
type Identity struct {
	UserID        string
	Email         string
	Authenticated bool
}

// WithIdentity stores the identity in the context.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// FromContext returns the request identity. The zero value means
// unauthenticated.
func FromContext(ctx context.Context) Identity {
	if v, ok := ctx.Value(identityKey).(Identity); ok {
		return v
	}
	return Identity{}
}

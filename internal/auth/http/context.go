// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"

	authDomain "github.com/artfolio/gallery/internal/auth/domain"
)

// identityKey is a context key type for storing verified identities.
type identityKey struct{}

// WithIdentity stores a verified identity in the context.
// This is called by the authentication middleware after successful token verification.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the verified identity from the context.
// Returns (identity, true) if one is present, or (nil, false) otherwise.
// The identity is a snapshot from token issuance time, not a live record.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}

// Package service provides the credential and token services behind
// authentication.
//
// PasswordService hashes and verifies user passwords with Argon2id.
// TokenService issues and verifies the signed, time-bounded identity
// assertions (JWTs) carried by every authenticated request.
package service

import (
	"time"

	"github.com/artfolio/gallery/internal/auth/domain"
)

// PasswordService defines password hashing and verification.
// Implementations must use a memory-hard hashing algorithm with a per-call
// random salt embedded in the digest.
type PasswordService interface {
	// Hash produces a one-way digest of the password. The salt and hashing
	// parameters are embedded in the digest, so Verify needs no extra state.
	//
	// Fails with ErrInvalidInput on an empty password or one longer than the
	// maximum accepted length. Minimum length policy belongs to the
	// registration path, not here.
	Hash(password string) (digest string, err error)

	// Verify performs a constant-time comparison between a plain password and
	// a digest produced by Hash. A mismatch returns false, never an error.
	Verify(password string, digest string) bool
}

// TokenService defines issuance and verification of identity tokens.
type TokenService interface {
	// Issue signs a token embedding the identity snapshot, valid for ttl.
	Issue(identity domain.Identity, ttl time.Duration) (string, error)

	// Verify checks the token and returns the embedded identity snapshot.
	// Signature integrity is checked before expiry. Failures are one of
	// ErrTokenMalformed, ErrTokenSignature, or ErrTokenExpired; all three
	// unwrap to ErrUnauthorized for the HTTP boundary.
	Verify(token string) (domain.Identity, error)
}

package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/artfolio/gallery/internal/errors"
)

// maxPasswordLength bounds hashing input. Argon2id cost grows with input
// size, so pathological passwords are rejected before hashing.
const maxPasswordLength = 1024

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a plain text password using Argon2id with a random salt.
func (p *passwordService) Hash(password string) (string, error) {
	if password == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "password must not be empty")
	}
	if len(password) > maxPasswordLength {
		return "", apperrors.Wrapf(apperrors.ErrInvalidInput, "password exceeds %d bytes", maxPasswordLength)
	}

	digest, err := p.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return digest, nil
}

// Verify performs a constant-time comparison between a password and its digest.
func (p *passwordService) Verify(password string, digest string) bool {
	ok, err := p.hasher.Verify([]byte(password), digest)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a PasswordService using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}

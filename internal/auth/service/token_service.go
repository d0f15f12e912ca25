package service

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/auth/domain"
	apperrors "github.com/artfolio/gallery/internal/errors"
)

// minSecretLength is the minimum signing secret size in bytes. A shorter
// secret makes HS256 tokens brute-forceable, so construction refuses it.
const minSecretLength = 32

// Token verification failure kinds. All three unwrap to ErrUnauthorized so
// the HTTP boundary maps them to a uniform 401; the distinction exists for
// internal logging only.
var (
	// ErrTokenMalformed indicates the token could not be parsed.
	ErrTokenMalformed = apperrors.Wrap(apperrors.ErrUnauthorized, "token malformed")

	// ErrTokenSignature indicates the token parsed but its signature is invalid.
	ErrTokenSignature = apperrors.Wrap(apperrors.ErrUnauthorized, "token signature invalid")

	// ErrTokenExpired indicates a correctly signed token past its expiry.
	ErrTokenExpired = apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")
)

// identityClaims embeds the identity snapshot in the JWT payload.
type identityClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Approval string `json:"approval"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
// The signing secret is immutable after construction.
type tokenService struct {
	secret []byte
	issuer string
}

// Issue signs a token carrying the identity snapshot, valid for ttl.
func (t *tokenService) Issue(identity domain.Identity, ttl time.Duration) (string, error) {
	if identity.UserID == uuid.Nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "identity user id is required")
	}
	if !identity.Role.Valid() || !identity.Approval.Valid() {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "identity role or approval state is invalid")
	}
	if ttl <= 0 {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "ttl must be greater than zero")
	}

	now := time.Now().UTC()
	claims := identityClaims{
		Username: identity.Username,
		Role:     string(identity.Role),
		Approval: string(identity.Approval),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded
// identity snapshot. Signature failures take precedence over expiry so a
// tampered token is never reported as merely expired. Verification is pure:
// repeated calls on the same token return identical results.
func (t *tokenService) Verify(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, ErrTokenMalformed
	}
	if err := t.checkSignature(tokenString); err != nil {
		return domain.Identity{}, err
	}

	claims := &identityClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case apperrors.Is(err, jwt.ErrTokenMalformed):
			return domain.Identity{}, ErrTokenMalformed
		case apperrors.Is(err, jwt.ErrTokenSignatureInvalid),
			apperrors.Is(err, jwt.ErrTokenUnverifiable):
			return domain.Identity{}, ErrTokenSignature
		case apperrors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, ErrTokenExpired
		default:
			return domain.Identity{}, ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return domain.Identity{}, ErrTokenSignature
	}

	return t.identityFromClaims(claims)
}

// checkSignature verifies the HMAC over header.payload before any claim
// decoding. The parser decodes the claims JSON first, so without this check
// a payload tamper that breaks the encoding would surface as malformed
// instead of as a signature failure.
func (t *tokenService) checkSignature(tokenString string) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrTokenMalformed
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return ErrTokenMalformed
	}
	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, t.secret); err != nil {
		return ErrTokenSignature
	}
	return nil
}

// identityFromClaims rebuilds the identity snapshot from validated claims.
// Claims carrying values outside the closed enums fail closed as malformed.
func (t *tokenService) identityFromClaims(claims *identityClaims) (domain.Identity, error) {
	if t.issuer != "" && claims.Issuer != t.issuer {
		return domain.Identity{}, ErrTokenMalformed
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return domain.Identity{}, ErrTokenMalformed
	}

	role := domain.Role(claims.Role)
	approval := domain.ApprovalState(claims.Approval)
	if !role.Valid() || !approval.Valid() {
		return domain.Identity{}, ErrTokenMalformed
	}

	return domain.Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     role,
		Approval: approval,
	}, nil
}

// NewTokenService creates a TokenService signing with HMAC-SHA256.
// Fails with ErrConfig when the secret is shorter than 32 bytes; callers
// must treat this as fatal at startup.
func NewTokenService(secret string, issuer string) (TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, apperrors.Wrapf(apperrors.ErrConfig, "token secret must be at least %d bytes", minSecretLength)
	}

	return &tokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

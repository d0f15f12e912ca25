package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/artfolio/gallery/internal/errors"
)

func TestNewPasswordService(t *testing.T) {
	service := NewPasswordService()
	assert.NotNil(t, service)
	assert.IsType(t, &passwordService{}, service)
}

func TestPasswordService_Hash(t *testing.T) {
	service := NewPasswordService()

	t.Run("Success_HashesPassword", func(t *testing.T) {
		digest, err := service.Hash("Str0ng!pass")
		require.NoError(t, err)

		assert.NotEmpty(t, digest)
		assert.NotEqual(t, "Str0ng!pass", digest)
		assert.Contains(t, digest, "$argon2id$")
	})

	t.Run("Success_SamePasswordProducesDifferentDigests", func(t *testing.T) {
		digest1, err := service.Hash("Str0ng!pass")
		require.NoError(t, err)

		digest2, err := service.Hash("Str0ng!pass")
		require.NoError(t, err)

		// Different salts, so different digests, but both verify
		assert.NotEqual(t, digest1, digest2)
		assert.True(t, service.Verify("Str0ng!pass", digest1))
		assert.True(t, service.Verify("Str0ng!pass", digest2))
	})

	t.Run("Failure_EmptyPassword", func(t *testing.T) {
		digest, err := service.Hash("")
		assert.Empty(t, digest)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Failure_PasswordTooLong", func(t *testing.T) {
		digest, err := service.Hash(strings.Repeat("a", maxPasswordLength+1))
		assert.Empty(t, digest)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Success_PasswordAtMaxLength", func(t *testing.T) {
		digest, err := service.Hash(strings.Repeat("a", maxPasswordLength))
		require.NoError(t, err)
		assert.NotEmpty(t, digest)
	})
}

func TestPasswordService_Verify(t *testing.T) {
	service := NewPasswordService()

	t.Run("Success_CorrectPasswordMatches", func(t *testing.T) {
		digest, err := service.Hash("correct-password")
		require.NoError(t, err)

		assert.True(t, service.Verify("correct-password", digest))
	})

	t.Run("Failure_IncorrectPasswordDoesNotMatch", func(t *testing.T) {
		digest, err := service.Hash("correct-password")
		require.NoError(t, err)

		assert.False(t, service.Verify("wrong-password", digest))
	})

	t.Run("Failure_EmptyPasswordDoesNotMatch", func(t *testing.T) {
		digest, err := service.Hash("correct-password")
		require.NoError(t, err)

		assert.False(t, service.Verify("", digest))
	})

	t.Run("Failure_InvalidDigestFormat", func(t *testing.T) {
		assert.False(t, service.Verify("correct-password", "invalid-digest"))
		assert.False(t, service.Verify("correct-password", ""))
	})

	t.Run("Success_CaseSensitiveComparison", func(t *testing.T) {
		digest, err := service.Hash("CaseSensitive")
		require.NoError(t, err)

		assert.True(t, service.Verify("CaseSensitive", digest))
		assert.False(t, service.Verify("casesensitive", digest))
	})
}

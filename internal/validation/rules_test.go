package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/artfolio/gallery/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})

	t.Run("non-nil error", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "Str0ng!pass", false},
		{"too short", "S0!a", true},
		{"missing uppercase", "str0ng!pass", true},
		{"missing lowercase", "STR0NG!PASS", true},
		{"missing number", "Strong!pass", true},
		{"missing special", "Str0ngpass", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("non-string value", func(t *testing.T) {
		assert.Error(t, rule.Validate(42))
	})
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "priya", false},
		{"with digits", "priya42", false},
		{"with separators", "priya.sharma_1-a", false},
		{"with space", "priya sharma", true},
		{"with at sign", "priya@example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username.Validate(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate("   "))
	// String rules skip empty input; emptiness is Required's job, so the
	// use cases always pair Required with NotBlank.
	assert.NoError(t, NotBlank.Validate(""))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("value"))
	assert.Error(t, NoWhitespace.Validate(" value"))
	assert.Error(t, NoWhitespace.Validate("value "))
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/patrolbook/patrolbook/internal/errors"
)

func TestNotBlank(t *testing.T) {
	t.Run("Success_NonBlankString", func(t *testing.T) {
		assert.NoError(t, NotBlank.Validate("officer-1"))
	})

	t.Run("Error_WhitespaceOnly", func(t *testing.T) {
		assert.Error(t, NotBlank.Validate("   "))
	})

	t.Run("Error_EmptyString", func(t *testing.T) {
		assert.Error(t, NotBlank.Validate(""))
	})
}

func TestWrapValidationError(t *testing.T) {
	t.Run("Success_NilPassesThrough", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("Success_WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(apperrors.New("username: cannot be blank"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestPasswordStrength_Validate(t *testing.T) {
	rule := PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	t.Run("Success_StrongPassword", func(t *testing.T) {
		assert.NoError(t, rule.Validate("Str0ng!Password"))
	})

	t.Run("Error_TooShort", func(t *testing.T) {
		err := rule.Validate("S0r!t")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8")
	})

	t.Run("Error_MissingUppercase", func(t *testing.T) {
		assert.Error(t, rule.Validate("str0ng!password"))
	})

	t.Run("Error_MissingLowercase", func(t *testing.T) {
		assert.Error(t, rule.Validate("STR0NG!PASSWORD"))
	})

	t.Run("Error_MissingNumber", func(t *testing.T) {
		assert.Error(t, rule.Validate("Strong!Password"))
	})

	t.Run("Error_MissingSpecial", func(t *testing.T) {
		assert.Error(t, rule.Validate("Str0ngPassword"))
	})

	t.Run("Error_NonString", func(t *testing.T) {
		assert.Error(t, rule.Validate(42))
	})
}

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("Success_PreservesErrorChain", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "identity not found")
		require.Error(t, wrapped)

		assert.True(t, Is(wrapped, ErrNotFound))
		assert.Equal(t, "identity not found: not found", wrapped.Error())
	})

	t.Run("Success_NilErrorReturnsNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("Success_DoubleWrapStillMatchesRoot", func(t *testing.T) {
		inner := Wrap(ErrUnavailable, "query failed")
		outer := Wrap(inner, "login")

		assert.True(t, Is(outer, ErrUnavailable))
	})
}

func TestIs(t *testing.T) {
	t.Run("Success_MatchesSentinel", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", ErrUnauthorized)
		assert.True(t, Is(err, ErrUnauthorized))
	})

	t.Run("Success_DistinctSentinelsDoNotMatch", func(t *testing.T) {
		assert.False(t, Is(ErrUnauthorized, ErrForbidden))
		assert.False(t, Is(ErrUnavailable, ErrNotFound))
	})
}

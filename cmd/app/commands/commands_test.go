package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

func testIO() IOTuple {
	return IOTuple{Reader: bytes.NewReader(nil), Writer: &bytes.Buffer{}}
}

func TestParseCoarseRole(t *testing.T) {
	role, err := parseCoarseRole("officer")
	require.NoError(t, err)
	assert.Equal(t, identitydomain.RoleOfficer, role)

	role, err = parseCoarseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, identitydomain.RoleAdmin, role)

	_, err = parseCoarseRole("superuser")
	assert.Error(t, err)
}

func TestGeneratePassword(t *testing.T) {
	first, err := generatePassword()
	require.NoError(t, err)
	second, err := generatePassword()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.GreaterOrEqual(t, len(first), 24)
}

func TestRunCreateIdentity_InputValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Error_EmptyUsername", func(t *testing.T) {
		err := RunCreateIdentity(ctx, testIO(), "  ", "J. Smith", "officer", "")
		assert.ErrorContains(t, err, "username is required")
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		err := RunCreateIdentity(ctx, testIO(), "jsmith", "", "officer", "")
		assert.ErrorContains(t, err, "name is required")
	})

	t.Run("Error_InvalidRole", func(t *testing.T) {
		err := RunCreateIdentity(ctx, testIO(), "jsmith", "J. Smith", "chief", "")
		assert.ErrorContains(t, err, "invalid role")
	})
}

func TestRunResetPassword_InputValidation(t *testing.T) {
	err := RunResetPassword(context.Background(), testIO(), "", "")
	assert.ErrorContains(t, err, "username is required")
}

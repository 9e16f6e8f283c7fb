package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoarseRole_Valid(t *testing.T) {
	t.Run("Success_KnownRoles", func(t *testing.T) {
		assert.True(t, RoleOfficer.Valid())
		assert.True(t, RoleAdmin.Valid())
	})

	t.Run("Error_UnknownRoleIsInvalid", func(t *testing.T) {
		assert.False(t, CoarseRole("superuser").Valid())
		assert.False(t, CoarseRole("").Valid())
		assert.False(t, CoarseRole("Admin").Valid()) // case matters for the coarse field
	})
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "users.create", NormalizeCode("Users.Create"))
	assert.Equal(t, "reports.view", NormalizeCode("  REPORTS.VIEW  "))
	assert.Equal(t, "", NormalizeCode("   "))
}

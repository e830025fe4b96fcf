//go:build unit

package user_test

import (
	"testing"

	"place-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"viewer", "operator", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("root")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, user.RoleAdmin.IsElevated())
	assert.False(t, user.RoleOperator.IsElevated())
	assert.False(t, user.RoleViewer.IsElevated())

	assert.True(t, user.RoleAdmin.CanManageTaxonomy())
	assert.True(t, user.RoleOperator.CanManageTaxonomy())
	assert.False(t, user.RoleViewer.CanManageTaxonomy())
}

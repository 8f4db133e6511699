package services

import (
	"testing"

	"uddaan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaults(t *testing.T) {
	db, cfg := newTestDB(t)
	auth := NewAuthService(db, cfg)
	roles := NewRoleService(db)

	require.NoError(t, roles.SeedDefaults(auth, "Admin", "admin@example.com", "admin123"))

	t.Run("system roles exist", func(t *testing.T) {
		for _, name := range []string{"Super Admin", "Admin", "Viewer"} {
			var role models.Role
			require.NoError(t, db.Where("name = ?", name).First(&role).Error, name)
			assert.True(t, role.IsSystem, name)
		}
	})

	t.Run("bootstrap admin holds the wildcard", func(t *testing.T) {
		var user models.User
		require.NoError(t, db.Preload("Role").
			Where("email = ?", "admin@example.com").First(&user).Error)
		assert.True(t, user.Role.Allows("anything.at.all"))
	})

	t.Run("seeding is idempotent", func(t *testing.T) {
		require.NoError(t, roles.SeedDefaults(auth, "Admin", "admin@example.com", "admin123"))

		var roleCount, userCount int64
		db.Model(&models.Role{}).Count(&roleCount)
		db.Model(&models.User{}).Count(&userCount)
		assert.Equal(t, int64(3), roleCount)
		assert.Equal(t, int64(1), userCount)
	})
}

func TestRoleLifecycle(t *testing.T) {
	db, cfg := newTestDB(t)
	auth := NewAuthService(db, cfg)
	roles := NewRoleService(db)

	require.NoError(t, roles.SeedDefaults(auth, "Admin", "admin@example.com", "admin123"))

	t.Run("unknown permission token is rejected", func(t *testing.T) {
		_, err := roles.CreateRole("Broken", "", []string{"jobs.read", "no.such.token"})
		assert.ErrorIs(t, err, ErrUnknownPermission)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := roles.CreateRole("Viewer", "", []string{"jobs.read"})
		assert.ErrorIs(t, err, ErrRoleExists)
	})

	t.Run("system role cannot be renamed or deleted", func(t *testing.T) {
		var viewer models.Role
		require.NoError(t, db.Where("name = ?", "Viewer").First(&viewer).Error)

		_, err := roles.UpdateRole(viewer.ID, "Spectator", "", []string{"jobs.read"})
		assert.ErrorIs(t, err, ErrSystemRole)

		assert.ErrorIs(t, roles.DeleteRole(viewer.ID), ErrSystemRole)
	})

	t.Run("role edits apply immediately to later reads", func(t *testing.T) {
		created, err := roles.CreateRole("Recruiter", "Handles applications",
			[]string{"applications.read"})
		require.NoError(t, err)
		assert.False(t, created.Allows("applications.update"))

		updated, err := roles.UpdateRole(created.ID, "", "Handles applications",
			[]string{"applications.read", "applications.update"})
		require.NoError(t, err)
		assert.True(t, updated.Allows("applications.update"))
	})

	t.Run("role referenced by a user cannot be deleted", func(t *testing.T) {
		role, err := roles.CreateRole("Temp", "", []string{"jobs.read"})
		require.NoError(t, err)
		_, err = auth.CreateUser("Holder", "holder@example.com", "secret123", role.ID, "")
		require.NoError(t, err)

		assert.ErrorIs(t, roles.DeleteRole(role.ID), ErrRoleInUse)
	})
}

func TestRoleAllows(t *testing.T) {
	wildcard := models.Role{Permissions: []string{models.PermissionAll}}
	assert.True(t, wildcard.Allows("jobs.delete"))
	assert.True(t, wildcard.Allows("settings.update"))

	scoped := models.Role{Permissions: []string{"jobs.read", "jobs.update"}}
	assert.True(t, scoped.Allows("jobs.read"))
	assert.False(t, scoped.Allows("jobs.delete"))
	// Exact match only: no prefix or namespace expansion
	assert.False(t, scoped.Allows("jobs"))
	assert.False(t, scoped.Allows("jobs.read.extra"))
}

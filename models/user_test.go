package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	// any ADMIN row wins regardless of position
	assert.Equal(t, RoleAdmin, ResolveRole([]UserRole{
		{Role: RoleManager},
		{Role: RoleAdmin},
	}))

	// otherwise the first row
	assert.Equal(t, RoleManager, ResolveRole([]UserRole{
		{Role: RoleManager},
		{Role: RoleManager},
	}))

	// no rows defaults to MANAGER
	assert.Equal(t, RoleManager, ResolveRole(nil))
}

func TestUserContextIsAdmin(t *testing.T) {
	assert.True(t, UserContext{Role: RoleAdmin}.IsAdmin())
	assert.False(t, UserContext{Role: RoleManager}.IsAdmin())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesManageStatus(t *testing.T) {
	assert.True(t, CapabilitiesFor(RoleAdminGeral).CanManageStatus)
	assert.True(t, CapabilitiesFor(RoleSupervisor).CanManageStatus)
	assert.True(t, CapabilitiesFor(RoleSupervisorEquipe).CanManageStatus)
	assert.False(t, CapabilitiesFor(RoleVendedor).CanManageStatus)
}

func TestCapabilitiesForceAnyStatus(t *testing.T) {
	assert.True(t, CapabilitiesFor(RoleAdminGeral).CanForceAnyStatus)
	assert.True(t, CapabilitiesFor(RoleSupervisor).CanForceAnyStatus)
	assert.False(t, CapabilitiesFor(RoleSupervisorEquipe).CanForceAnyStatus)
	assert.False(t, CapabilitiesFor(RoleVendedor).CanForceAnyStatus)
}

func TestCapabilitiesMarkLostMatchesManageStatus(t *testing.T) {
	for _, role := range []Role{RoleAdminGeral, RoleSupervisor, RoleSupervisorEquipe, RoleVendedor} {
		caps := CapabilitiesFor(role)
		assert.Equal(t, caps.CanManageStatus, caps.CanMarkLost, "role %s", role)
	}
}

func TestCapabilitiesUnknownRoleFailsClosed(t *testing.T) {
	assert.Equal(t, Capabilities{}, CapabilitiesFor(Role("estagiario")))
	assert.Equal(t, Capabilities{}, CapabilitiesFor(Role("")))
}

func TestCapabilitiesAdminOnlyManagesUsersAndTeams(t *testing.T) {
	assert.True(t, CapabilitiesFor(RoleAdminGeral).CanManageUsers)
	assert.True(t, CapabilitiesFor(RoleAdminGeral).CanManageTeams)

	for _, role := range []Role{RoleSupervisor, RoleSupervisorEquipe, RoleVendedor} {
		caps := CapabilitiesFor(role)
		assert.False(t, caps.CanManageUsers, "role %s", role)
		assert.False(t, caps.CanManageTeams, "role %s", role)
	}
}

func TestCapabilitiesVisibilityScopes(t *testing.T) {
	assert.True(t, CapabilitiesFor(RoleAdminGeral).CanViewAllSales)
	assert.True(t, CapabilitiesFor(RoleSupervisor).CanViewAllSales)
	assert.True(t, CapabilitiesFor(RoleSupervisorEquipe).CanViewTeamSales)
	assert.False(t, CapabilitiesFor(RoleVendedor).CanViewAllSales)
	assert.False(t, CapabilitiesFor(RoleVendedor).CanViewTeamSales)
}

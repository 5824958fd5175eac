package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, Role("MANAGER").Valid())
}

func TestRoleCanManageOrders(t *testing.T) {
	assert.True(t, RoleSeller.CanManageOrders())
	assert.True(t, RoleAdmin.CanManageOrders())
	assert.False(t, RoleCustomer.CanManageOrders())
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionByRole(t *testing.T) {
	admin := &User{Role: RoleAdmin, IsActive: true}
	supplier := &User{Role: RoleSupplier, IsActive: true}
	influencer := &User{Role: RoleInfluencer, IsActive: true}

	assert.True(t, admin.HasPermission(PermManageUsers))
	assert.True(t, admin.HasPermission(PermModerateContent))

	assert.True(t, supplier.HasPermission(PermManageOrders))
	assert.False(t, supplier.HasPermission(PermManageSuppliers))

	assert.False(t, influencer.HasPermission(PermManageOrders))
	assert.False(t, influencer.HasPermission(PermViewReports))
}

func TestHasPermissionInactiveUser(t *testing.T) {
	admin := &User{Role: RoleAdmin, IsActive: false}
	assert.False(t, admin.HasPermission(PermManageUsers))
}

func TestHasPermissionNilUser(t *testing.T) {
	var u *User
	assert.False(t, u.HasPermission(PermManageUsers))
}

func TestIsSupplierOwner(t *testing.T) {
	owner := &User{Role: RoleSupplier, SupplierID: "sup-001", IsActive: true}
	other := &User{Role: RoleSupplier, SupplierID: "sup-002", IsActive: true}
	admin := &User{Role: RoleAdmin, IsActive: true}

	assert.True(t, owner.IsSupplierOwner("sup-001"))
	assert.False(t, other.IsSupplierOwner("sup-001"))

	// Admins manage suppliers but do not own them.
	assert.False(t, admin.IsSupplierOwner("sup-001"))

	// An empty supplier id never matches, even when both sides are empty.
	assert.False(t, (&User{Role: RoleSupplier}).IsSupplierOwner(""))
}

func TestCanEditSupplierProfile(t *testing.T) {
	owner := &User{Role: RoleSupplier, SupplierID: "sup-001", IsActive: true}
	other := &User{Role: RoleSupplier, SupplierID: "sup-002", IsActive: true}
	admin := &User{Role: RoleAdmin, IsActive: true}
	influencer := &User{Role: RoleInfluencer, IsActive: true}

	assert.True(t, owner.CanEditSupplierProfile("sup-001"))
	assert.True(t, admin.CanEditSupplierProfile("sup-001"))
	assert.False(t, other.CanEditSupplierProfile("sup-001"))
	assert.False(t, influencer.CanEditSupplierProfile("sup-001"))
}

func TestCanManageBusinessCards(t *testing.T) {
	owner := &User{Role: RoleSupplier, SupplierID: "sup-001", IsActive: true}

	assert.True(t, owner.CanManageBusinessCards("sup-001"))
	assert.False(t, owner.CanManageBusinessCards("sup-002"))
}

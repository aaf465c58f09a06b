package models

// Permission names checked by the dashboards.
const (
	PermManageUsers     = "manage_users"
	PermManageSuppliers = "manage_suppliers"
	PermModerateContent = "moderate_content"
	PermViewReports     = "view_reports"
	PermManageOrders    = "manage_orders"
)

var rolePermissions = map[string][]string{
	RoleAdmin: {
		PermManageUsers,
		PermManageSuppliers,
		PermModerateContent,
		PermViewReports,
		PermManageOrders,
	},
	RoleSupplier:   {PermManageOrders},
	RoleInfluencer: {},
}

// HasPermission reports whether the user's role grants the named permission.
func (u *User) HasPermission(permission string) bool {
	if u == nil || !u.IsActive {
		return false
	}
	for _, p := range rolePermissions[u.Role] {
		if p == permission {
			return true
		}
	}
	return false
}

// IsSupplierOwner reports whether the user is the supplier account owning supplierID.
func (u *User) IsSupplierOwner(supplierID string) bool {
	if u == nil || supplierID == "" {
		return false
	}
	return u.Role == RoleSupplier && u.SupplierID == supplierID
}

// CanEditSupplierProfile is true for admins and for the owning supplier.
func (u *User) CanEditSupplierProfile(supplierID string) bool {
	if u == nil {
		return false
	}
	return u.Role == RoleAdmin || u.IsSupplierOwner(supplierID)
}

// CanManageBusinessCards is true for admins and for the owning supplier.
func (u *User) CanManageBusinessCards(supplierID string) bool {
	return u.CanEditSupplierProfile(supplierID)
}

package constants

const (
	RoleAdmin  = "ADMIN"
	RoleUser   = "USER"
	RoleViewer = "VIEWER"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{RoleAdmin, RoleUser, RoleViewer}

	// canViewData
	ViewRoles = []string{RoleAdmin, RoleUser, RoleViewer}

	// canEditData
	EditRoles = []string{RoleAdmin, RoleUser}

	// canManageUsers
	AdminOnly = []string{RoleAdmin}
)

func HasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func CanViewData(role string) bool    { return HasRole(role, ViewRoles) }
func CanEditData(role string) bool    { return HasRole(role, EditRoles) }
func CanManageUsers(role string) bool { return HasRole(role, AdminOnly) }

package entity

// Role is the access level required on, or held over, a profile.
type Role string

const (
	// RoleViewer may read a profile.
	RoleViewer Role = "viewer"
	// RoleEditor may read and modify a profile.
	RoleEditor Role = "editor"
	// RoleOwner is held only by the profile's owning account.
	RoleOwner Role = "owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleOwner:
		return true
	default:
		return false
	}
}

// SatisfiedByShare reports whether a share grant with the given role meets r.
// Editor grants include viewer rights; no grant ever satisfies the owner role.
func (r Role) SatisfiedByShare(granted ShareRole) bool {
	switch r {
	case RoleViewer:
		return granted == ShareRoleViewer || granted == ShareRoleEditor
	case RoleEditor:
		return granted == ShareRoleEditor
	default:
		return false
	}
}

// Package authorization defines the closed set of roles the tracker knows
// about. Visibility logic switches exhaustively over Role so a new role is a
// compile-time-visible gap, not a silently empty branch.
package authorization

type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleProjectManager Role = "ProjectManager"
	RoleDeveloper      Role = "Developer"
	RoleSubmitter      Role = "Submitter"
	RoleDemoUser       Role = "DemoUser"
)

// AllRoles lists every role in a stable order, used for seeding and for
// role-management views.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleProjectManager, RoleDeveloper, RoleSubmitter, RoleDemoUser}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleDeveloper, RoleSubmitter, RoleDemoUser:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole returns the role and whether the string named a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

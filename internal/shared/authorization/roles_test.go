package authorization

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"Admin", RoleAdmin, true},
		{"ProjectManager", RoleProjectManager, true},
		{"Developer", RoleDeveloper, true},
		{"Submitter", RoleSubmitter, true},
		{"DemoUser", RoleDemoUser, true},
		{"admin", "", false},
		{"Manager", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, ok := ParseRole(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && role != tt.want {
				t.Errorf("ParseRole(%q) = %v, want %v", tt.input, role, tt.want)
			}
		})
	}
}

func TestAllRoles_CoversEveryValidRole(t *testing.T) {
	roles := AllRoles()
	if len(roles) != 5 {
		t.Fatalf("len(AllRoles()) = %d, want 5", len(roles))
	}
	for _, role := range roles {
		if !role.IsValid() {
			t.Errorf("AllRoles() contains invalid role %q", role)
		}
	}
}

func TestRole_IsAdmin(t *testing.T) {
	if !RoleAdmin.IsAdmin() {
		t.Error("RoleAdmin.IsAdmin() = false, want true")
	}
	if RoleProjectManager.IsAdmin() {
		t.Error("RoleProjectManager.IsAdmin() = true, want false")
	}
}

package models

import "testing"

func TestCanonicalRoleAliases(t *testing.T) {
	tests := []struct {
		token string
		want  Role
	}{
		{"admin", RoleIQAC},
		{"Admin", RoleIQAC},
		{"IQAC(admin)", RoleIQAC},
		{"IQAC", RoleIQAC},
		{"editor", RoleOffice},
		{"Editor", RoleOffice},
		{"Office", RoleOffice},
		{"viewer", RoleFaculty},
		{"Viewer", RoleFaculty},
		{"Faculty", RoleFaculty},
	}
	for _, tc := range tests {
		if got := CanonicalRole(tc.token); got != tc.want {
			t.Errorf("CanonicalRole(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}
}

func TestCanonicalRoleUnknownPassthrough(t *testing.T) {
	got := CanonicalRole("auditor")
	if got != Role("auditor") {
		t.Errorf("unknown token should pass through, got %q", got)
	}
	if got.IsAdministrative() {
		t.Error("unknown role must not be administrative")
	}
}

func TestIsAdministrative(t *testing.T) {
	if !RoleIQAC.IsAdministrative() || !RoleOffice.IsAdministrative() {
		t.Error("IQAC and Office are administrative")
	}
	if RoleFaculty.IsAdministrative() {
		t.Error("Faculty is not administrative")
	}
}

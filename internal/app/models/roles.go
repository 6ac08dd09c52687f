package models

// Role is the canonical role assigned to a user session.
type Role string

const (
	// RoleIQAC is the top administrative role with full CRUD and user management.
	RoleIQAC Role = "IQAC"
	// RoleOffice can create and edit any faculty record but only its own publications.
	RoleOffice Role = "Office"
	// RoleFaculty is the self-service role limited to its own record.
	RoleFaculty Role = "Faculty"
)

// roleAliases maps legacy role tokens still present in stored sessions and
// user rows to the canonical trio.
var roleAliases = map[string]Role{
	"admin":       RoleIQAC,
	"Admin":       RoleIQAC,
	"editor":      RoleOffice,
	"Editor":      RoleOffice,
	"viewer":      RoleFaculty,
	"Viewer":      RoleFaculty,
	"IQAC(admin)": RoleIQAC,
}

// CanonicalRole resolves a raw role token to a canonical role. Unknown
// tokens pass through unchanged; such roles hold no capabilities.
func CanonicalRole(token string) Role {
	if mapped, ok := roleAliases[token]; ok {
		return mapped
	}
	return Role(token)
}

// IsAdministrative reports whether the role can see all faculty records.
func (r Role) IsAdministrative() bool {
	return r == RoleIQAC || r == RoleOffice
}

package auth

import "github.com/pragati-coe/facultyhub/internal/app/models"

// Identity is the authenticated caller attached to each request.
// RoleToken is the raw stored role string; Role() canonicalizes it.
type Identity struct {
	UserID    int64
	Username  string
	Email     string
	RoleToken string
}

// Role resolves the caller's canonical role.
func (i Identity) Role() models.Role {
	return models.CanonicalRole(i.RoleToken)
}

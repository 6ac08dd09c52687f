package models

import "time"

// User represents an application account. Accounts are created unapproved by
// self-registration and become usable only after an IQAC actor approves them.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	// RoleToken is stored as entered and may be a legacy alias; resolve it
	// with CanonicalRole before making authorization decisions.
	RoleToken string     `json:"role"`
	Approved  bool       `json:"approved"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// Role returns the canonical role for this user.
func (u *User) Role() Role {
	return CanonicalRole(u.RoleToken)
}

package dto

// UpdateRoleRequest changes an account's role. The token is stored as given;
// legacy aliases are resolved at authorization time.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

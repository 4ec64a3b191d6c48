package dto

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type UpdateVerifiedRequest struct {
	IsVerified *bool `json:"is_verified" validate:"required"`
}

// UpdateUserRequest is a structured patch: only fields present in the
// request body are modified.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

package models

// Admin roles. A user with no admin row, or an inactive one, has no
// elevated privileges.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	ID       int    `json:"id"`
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// CreateAdminRequest creates the backing user and the admin row together.
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super_admin"`
}

type UpdateAdminRequest struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin super_admin"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// Empty reports whether the patch carries no changes.
func (r UpdateAdminRequest) Empty() bool {
	return r.Role == nil && r.IsActive == nil
}

type AdminMeResponse struct {
	IsAdmin bool    `json:"isAdmin"`
	Role    *string `json:"role"`
}

package interfaces

import "errors"

// Tagged authorization outcomes. Handlers match these exhaustively when
// mapping failures to HTTP statuses instead of string-matching error text.
var (
	// ErrNotAuthenticated means no session, or a session bound to no user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotAdmin means the caller is a valid user with no admin record.
	ErrNotAdmin = errors.New("not an admin")

	// ErrAdminInactive means the caller's admin record is deactivated.
	ErrAdminInactive = errors.New("admin is inactive")

	// ErrNotSuperAdmin means the caller is an active admin without the
	// super_admin role required by the endpoint.
	ErrNotSuperAdmin = errors.New("super admin role required")
)

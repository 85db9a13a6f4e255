package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"

	"sangam/internal/interfaces"
	"sangam/internal/middleware"
	"sangam/internal/models"
	"sangam/internal/repository"
)

// AdminGate is the single authorization check every mutating endpoint
// runs before touching storage: resolve the caller's session-bound user
// id, look up their admin record, and fail closed.
type AdminGate struct {
	admins repository.AdminRepository

	// distinct401 controls the status mapping for gate failures. The
	// legacy behavior (false) maps every failure to 403; when true a
	// missing session maps to 401 instead.
	distinct401 bool
}

func NewAdminGate(admins repository.AdminRepository, distinct401 bool) *AdminGate {
	return &AdminGate{admins: admins, distinct401: distinct401}
}

// require returns the caller's active admin record or a tagged error.
func (g *AdminGate) require(ctx context.Context) (*models.Admin, error) {
	userID := middleware.UserID(ctx)
	if userID == "" {
		return nil, interfaces.ErrNotAuthenticated
	}

	admin, err := g.admins.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interfaces.ErrNotAdmin
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, interfaces.ErrAdminInactive
	}
	return admin, nil
}

// requireSuperAdmin additionally checks the super_admin role.
func (g *AdminGate) requireSuperAdmin(ctx context.Context) (*models.Admin, error) {
	admin, err := g.require(ctx)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleSuperAdmin {
		return nil, interfaces.ErrNotSuperAdmin
	}
	return admin, nil
}

// writeAuthError maps a gate failure to a response. Unexpected errors
// become a 500.
func (g *AdminGate) writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interfaces.ErrNotAuthenticated):
		if g.distinct401 {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeMessage(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, interfaces.ErrNotAdmin),
		errors.Is(err, interfaces.ErrAdminInactive),
		errors.Is(err, interfaces.ErrNotSuperAdmin):
		writeMessage(w, http.StatusForbidden, "Forbidden")
	default:
		log.Printf("admin gate: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
	}
}

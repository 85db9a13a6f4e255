package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http/httptest"
	"testing"

	"sangam/internal/interfaces"
	"sangam/internal/middleware"
	"sangam/internal/models"
	"sangam/internal/repository"
)

// mockAdminRepo serves gate lookups from a map and records creates. The
// other handler tests in this package share it.
type mockAdminRepo struct {
	admins  map[string]*models.Admin
	byID    map[int]*models.Admin
	created []models.Admin
}

var _ repository.AdminRepository = (*mockAdminRepo)(nil)

func (m *mockAdminRepo) GetByUserID(ctx context.Context, userID string) (*models.Admin, error) {
	if a, ok := m.admins[userID]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	var out []models.Admin
	for _, a := range m.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAdminRepo) Create(ctx context.Context, userID, role string) (*models.Admin, error) {
	a := models.Admin{ID: len(m.created) + 1, UserID: userID, Role: role, IsActive: true}
	m.created = append(m.created, a)
	return &a, nil
}

func (m *mockAdminRepo) Update(ctx context.Context, id int, req *models.UpdateAdminRequest) (*models.Admin, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if req.Role != nil {
		a.Role = *req.Role
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	return a, nil
}

func activeAdmin(role string) *mockAdminRepo {
	return &mockAdminRepo{admins: map[string]*models.Admin{
		"u1": {ID: 1, UserID: "u1", Role: role, IsActive: true},
	}}
}

func adminCtx() context.Context {
	return middleware.WithUserID(context.Background(), "u1")
}

func TestGateAnonymous(t *testing.T) {
	g := NewAdminGate(&mockAdminRepo{}, false)
	if _, err := g.require(context.Background()); !errors.Is(err, interfaces.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestGateNotAdmin(t *testing.T) {
	g := NewAdminGate(&mockAdminRepo{}, false)
	if _, err := g.require(adminCtx()); !errors.Is(err, interfaces.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestGateInactiveAdmin(t *testing.T) {
	repo := &mockAdminRepo{admins: map[string]*models.Admin{
		"u1": {ID: 1, UserID: "u1", Role: models.RoleAdmin, IsActive: false},
	}}
	g := NewAdminGate(repo, false)
	if _, err := g.require(adminCtx()); !errors.Is(err, interfaces.ErrAdminInactive) {
		t.Fatalf("expected ErrAdminInactive, got %v", err)
	}
}

func TestGateSuperAdminRole(t *testing.T) {
	g := NewAdminGate(activeAdmin(models.RoleAdmin), false)
	if _, err := g.requireSuperAdmin(adminCtx()); !errors.Is(err, interfaces.ErrNotSuperAdmin) {
		t.Fatalf("expected ErrNotSuperAdmin, got %v", err)
	}

	g = NewAdminGate(activeAdmin(models.RoleSuperAdmin), false)
	if _, err := g.requireSuperAdmin(adminCtx()); err != nil {
		t.Fatalf("expected super admin to pass, got %v", err)
	}
}

func TestGateStatusMapping(t *testing.T) {
	g := NewAdminGate(&mockAdminRepo{}, false)
	w := httptest.NewRecorder()
	g.writeAuthError(w, interfaces.ErrNotAuthenticated)
	if w.Code != 403 {
		t.Fatalf("legacy mapping: expected 403, got %d", w.Code)
	}

	g = NewAdminGate(&mockAdminRepo{}, true)
	w = httptest.NewRecorder()
	g.writeAuthError(w, interfaces.ErrNotAuthenticated)
	if w.Code != 401 {
		t.Fatalf("distinct mapping: expected 401, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	g.writeAuthError(w, interfaces.ErrNotAdmin)
	if w.Code != 403 {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}
}

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"

	"sangam/internal/config"
	"sangam/internal/models"
	"sangam/internal/repository"
)

type mockUserRepo struct {
	users   map[string]*models.User
	exists  bool
	created []*models.User
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	if u, ok := m.users[identifier]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	return m.exists, nil
}

func testUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h := string(hash)
	return &models.User{ID: "u1", Email: &email, PasswordHash: &h}
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newAuthHandler(users *mockUserRepo, admins *mockAdminRepo, cfg *config.Config) (*AuthHandler, *scs.SessionManager) {
	sm := scs.New()
	if admins == nil {
		admins = &mockAdminRepo{}
	}
	return NewAuthHandler(users, admins, cfg, sm), sm
}

func TestLoginUnknownUser(t *testing.T) {
	h, sm := newAuthHandler(&mockUserRepo{}, nil, &config.Config{})
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Login)).ServeHTTP(w, loginRequest(`{"identifier":"x@y.z","password":"secret123"}`))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := &mockUserRepo{users: map[string]*models.User{
		"x@y.z": testUser(t, "x@y.z", "correct-horse"),
	}}
	h, sm := newAuthHandler(users, nil, &config.Config{})
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Login)).ServeHTTP(w, loginRequest(`{"identifier":"x@y.z","password":"wrong"}`))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestLoginMissingFields(t *testing.T) {
	h, sm := newAuthHandler(&mockUserRepo{}, nil, &config.Config{})
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Login)).ServeHTTP(w, loginRequest(`{"identifier":"x@y.z"}`))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	users := &mockUserRepo{users: map[string]*models.User{
		"x@y.z": testUser(t, "x@y.z", "correct-horse"),
	}}
	h, sm := newAuthHandler(users, nil, &config.Config{})
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Login)).ServeHTTP(w, loginRequest(`{"identifier":"x@y.z","password":"correct-horse"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "session=") {
		t.Fatalf("expected a session cookie, got %q", cookie)
	}
	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "u1" {
		t.Fatalf("expected user id in response, got %+v", resp)
	}
}

func TestLoginPromotesBootstrapSuperAdmin(t *testing.T) {
	users := &mockUserRepo{users: map[string]*models.User{
		"boss@y.z": testUser(t, "boss@y.z", "correct-horse"),
	}}
	admins := &mockAdminRepo{}
	h, sm := newAuthHandler(users, admins, &config.Config{BootstrapSuperAdminEmail: "boss@y.z"})
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Login)).ServeHTTP(w, loginRequest(`{"identifier":"boss@y.z","password":"correct-horse"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if len(admins.created) != 1 || admins.created[0].Role != models.RoleSuperAdmin {
		t.Fatalf("expected a super_admin record, got %+v", admins.created)
	}
}

func TestLoginDoesNotRepromoteExistingAdmin(t *testing.T) {
	users := &mockUserRepo{users: map[string]*models.User{
		"boss@y.z": testUser(t, "boss@y.z", "correct-horse"),
	}}
	admins := activeAdmin(models.RoleAdmin)
	h, sm := newAuthHandler(users, admins, &config.Config{BootstrapSuperAdminEmail: "boss@y.z"})
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Login)).ServeHTTP(w, loginRequest(`{"identifier":"boss@y.z","password":"correct-horse"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(admins.created) != 0 {
		t.Fatalf("existing admin must not get a second record")
	}
}

func TestAuthUserUnauthenticated(t *testing.T) {
	h, sm := newAuthHandler(&mockUserRepo{}, nil, &config.Config{})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.User)).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogoutRedirectsHome(t *testing.T) {
	h, sm := newAuthHandler(&mockUserRepo{}, nil, &config.Config{})
	req := httptest.NewRequest(http.MethodGet, "/api/logout", nil)
	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Logout)).ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"sangam/internal/config"
	"sangam/internal/middleware"
	"sangam/internal/models"
	"sangam/internal/repository"
)

type AuthHandler struct {
	users    repository.UserRepository
	admins   repository.AdminRepository
	sessions *scs.SessionManager
	cfg      *config.Config
	v        *validator.Validate
}

func NewAuthHandler(users repository.UserRepository, admins repository.AdminRepository, cfg *config.Config, sessions *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		users:    users,
		admins:   admins,
		sessions: sessions,
		cfg:      cfg,
		v:        newValidator(),
	}
}

// @Tags Auth
// @Summary Log in with email or username
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.users.GetByIdentifier(r.Context(), req.Identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}

	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.bootstrapSuperAdmin(r, user)

	// Rotate the session token on privilege change.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		log.Printf("login: renew session: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Session error")
		return
	}
	h.sessions.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	writeJSON(w, http.StatusOK, models.LoginResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// bootstrapSuperAdmin promotes the configured email to super_admin on
// login when no admin record exists yet. Failures are non-fatal.
func (h *AuthHandler) bootstrapSuperAdmin(r *http.Request, user *models.User) {
	if h.cfg.BootstrapSuperAdminEmail == "" || user.Email == nil ||
		*user.Email != h.cfg.BootstrapSuperAdminEmail {
		return
	}
	if _, err := h.admins.GetByUserID(r.Context(), user.ID); err == nil {
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("bootstrap super admin lookup: %v", err)
		return
	}
	if _, err := h.admins.Create(r.Context(), user.ID, models.RoleSuperAdmin); err != nil {
		log.Printf("bootstrap super admin create: %v", err)
	}
}

// @Tags Auth
// @Summary Current session user
// @Produce json
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/user [get]
func (h *AuthHandler) User(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusUnauthorized, "User not found")
			return
		}
		log.Printf("auth user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// @Tags Auth
// @Summary Log out and return to the home page
// @Router /api/logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		log.Printf("logout: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

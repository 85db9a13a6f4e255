package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sangam/internal/middleware"
	"sangam/internal/models"
	"sangam/internal/repository"
	"sangam/internal/services"
)

type AdminHandler struct {
	users  repository.UserRepository
	admins repository.AdminRepository
	gate   *AdminGate
	email  services.EmailSender
	v      *validator.Validate
}

// NewAdminHandler wires admin management. email may be nil, in which case
// newly created admins are not notified.
func NewAdminHandler(users repository.UserRepository, admins repository.AdminRepository, gate *AdminGate, email services.EmailSender) *AdminHandler {
	return &AdminHandler{
		users:  users,
		admins: admins,
		gate:   gate,
		email:  email,
		v:      newValidator(),
	}
}

// @Tags Admins
// @Summary Admin status of the current session
// @Produce json
// @Success 200 {object} models.AdminMeResponse
// @Router /api/admins/me [get]
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	resp := models.AdminMeResponse{}

	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	admin, err := h.admins.GetByUserID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("admins me: %v", err)
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}
	if admin.IsActive {
		resp.IsAdmin = true
		resp.Role = &admin.Role
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Tags Admins
// @Summary List admin records
// @Produce json
// @Success 200 {array} models.Admin
// @Failure 403 {object} models.ErrorResponse
// @Router /api/admins [get]
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.requireSuperAdmin(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	admins, err := h.admins.List(r.Context())
	if err != nil {
		log.Printf("list admins: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to list admins")
		return
	}
	if admins == nil {
		admins = []models.Admin{}
	}
	writeJSON(w, http.StatusOK, admins)
}

// @Tags Admins
// @Summary Create an admin and their backing user account
// @Accept json
// @Produce json
// @Param body body models.CreateAdminRequest true "New admin"
// @Success 201 {object} models.Admin
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/admins [post]
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.requireSuperAdmin(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	var req models.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	exists, err := h.users.ExistsByEmailOrUsername(r.Context(), req.Email, req.Username)
	if err != nil {
		log.Printf("create admin: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}
	if exists {
		writeMessage(w, http.StatusBadRequest, "A user with this email or username already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("create admin: hash password: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	hashStr := string(hash)
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        &req.Email,
		Username:     &req.Username,
		PasswordHash: &hashStr,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		log.Printf("create admin: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	admin, err := h.admins.Create(r.Context(), user.ID, role)
	if err != nil {
		log.Printf("create admin: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	if h.email != nil {
		go h.sendInvite(req.Email, req.Username)
	}

	writeJSON(w, http.StatusCreated, admin)
}

func (h *AdminHandler) sendInvite(email, username string) {
	body := "Hello " + username + ",\n\n" +
		"An administrator account has been created for you. " +
		"Log in with your username and the password you were given.\n"
	if err := h.email.Send(email, "Your admin account", body); err != nil {
		log.Printf("send admin invite to %s: %v", email, err)
	}
}

// @Tags Admins
// @Summary Update an admin's role or active flag
// @Accept json
// @Produce json
// @Param id path int true "Admin id"
// @Param body body models.UpdateAdminRequest true "Patch"
// @Success 200 {object} models.Admin
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/admins/{id} [patch]
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.requireSuperAdmin(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	var req models.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	if req.Empty() {
		writeMessage(w, http.StatusBadRequest, "No fields to update")
		return
	}

	admin, err := h.admins.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Admin not found")
			return
		}
		log.Printf("update admin: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to update admin")
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

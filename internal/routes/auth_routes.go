package routes

import (
	"database/sql"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"sangam/internal/config"
	"sangam/internal/contract"
	"sangam/internal/handlers"
	"sangam/internal/repository"
)

func RegisterAuthRoutes(r chi.Router, db *sql.DB, cfg *config.Config, sessions *scs.SessionManager) {
	handler := handlers.NewAuthHandler(
		repository.NewUserRepository(db), repository.NewAdminRepository(db), cfg, sessions)

	r.MethodFunc(contract.AuthLogin.Method, contract.AuthLogin.ChiPattern(), handler.Login)
	r.MethodFunc(contract.AuthUser.Method, contract.AuthUser.ChiPattern(), handler.User)
	r.MethodFunc(contract.AuthLogout.Method, contract.AuthLogout.ChiPattern(), handler.Logout)
}

package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"sangam/internal/contract"
	"sangam/internal/handlers"
	"sangam/internal/repository"
	"sangam/internal/services"
)

func RegisterAdminRoutes(r chi.Router, db *sql.DB, gate *handlers.AdminGate, email services.EmailSender) {
	handler := handlers.NewAdminHandler(
		repository.NewUserRepository(db), repository.NewAdminRepository(db), gate, email)

	r.MethodFunc(contract.AdminsMe.Method, contract.AdminsMe.ChiPattern(), handler.Me)
	r.MethodFunc(contract.AdminsList.Method, contract.AdminsList.ChiPattern(), handler.List)
	r.MethodFunc(contract.AdminsCreate.Method, contract.AdminsCreate.ChiPattern(), handler.Create)
	r.MethodFunc(contract.AdminsUpdate.Method, contract.AdminsUpdate.ChiPattern(), handler.Update)
}

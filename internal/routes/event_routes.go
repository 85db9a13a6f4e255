package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"sangam/internal/contract"
	"sangam/internal/handlers"
	"sangam/internal/repository"
)

func RegisterEventRoutes(r chi.Router, db *sql.DB, gate *handlers.AdminGate, sanitizeHTML bool) {
	handler := handlers.NewEventHandler(repository.NewEventRepository(db), gate, sanitizeHTML)

	r.MethodFunc(contract.EventsList.Method, contract.EventsList.ChiPattern(), handler.List)
	r.MethodFunc(contract.EventsGet.Method, contract.EventsGet.ChiPattern(), handler.Get)
	r.MethodFunc(contract.EventsCreate.Method, contract.EventsCreate.ChiPattern(), handler.Create)
	r.MethodFunc(contract.EventsUpdate.Method, contract.EventsUpdate.ChiPattern(), handler.Update)
	r.MethodFunc(contract.EventsUpsertTranslation.Method, contract.EventsUpsertTranslation.ChiPattern(), handler.UpsertTranslation)
}

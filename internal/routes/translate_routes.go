package routes

import (
	"github.com/go-chi/chi/v5"

	"sangam/internal/contract"
	"sangam/internal/handlers"
	"sangam/internal/services"
)

func RegisterTranslateRoutes(r chi.Router, client *services.TranslateClient, gate *handlers.AdminGate) {
	handler := handlers.NewTranslateHandler(client, gate)

	r.MethodFunc(contract.Translate.Method, contract.Translate.ChiPattern(), handler.Translate)
}

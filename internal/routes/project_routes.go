package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"sangam/internal/contract"
	"sangam/internal/handlers"
	"sangam/internal/repository"
)

func RegisterProjectRoutes(r chi.Router, db *sql.DB, gate *handlers.AdminGate, sanitizeHTML bool) {
	repo := repository.NewProjectRepository(db)
	handler := handlers.NewProjectHandler(repo, gate, sanitizeHTML)
	home := handlers.NewHomeHandler(repo)

	r.MethodFunc(contract.HomeFeatured.Method, contract.HomeFeatured.ChiPattern(), home.Featured)

	r.MethodFunc(contract.ProjectsList.Method, contract.ProjectsList.ChiPattern(), handler.List)
	r.MethodFunc(contract.ProjectsGet.Method, contract.ProjectsGet.ChiPattern(), handler.Get)
	r.MethodFunc(contract.ProjectsCreate.Method, contract.ProjectsCreate.ChiPattern(), handler.Create)
	r.MethodFunc(contract.ProjectsUpdate.Method, contract.ProjectsUpdate.ChiPattern(), handler.Update)
	r.MethodFunc(contract.ProjectsUpsertTranslation.Method, contract.ProjectsUpsertTranslation.ChiPattern(), handler.UpsertTranslation)
}

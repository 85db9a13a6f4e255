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

	"sangam/internal/models"
	"sangam/internal/repository"
	"sangam/internal/sanitize"
	"sangam/internal/slug"
)

// featuredProjectCap is the most projects that may be featured at once;
// the home page shows exactly this many slots.
const featuredProjectCap = 4

type ProjectHandler struct {
	projects     repository.ProjectRepository
	gate         *AdminGate
	sanitizeHTML bool
	v            *validator.Validate
}

func NewProjectHandler(projects repository.ProjectRepository, gate *AdminGate, sanitizeHTML bool) *ProjectHandler {
	return &ProjectHandler{
		projects:     projects,
		gate:         gate,
		sanitizeHTML: sanitizeHTML,
		v:            newValidator(),
	}
}

// @Tags Projects
// @Summary List projects with their translations
// @Produce json
// @Param featured query bool false "Only (non-)featured projects"
// @Success 200 {array} models.ProjectWithTranslations
// @Router /api/projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeFieldError(w, "featured must be true or false", "featured")
			return
		}
		featured = &b
	}

	projects, err := h.projects.List(r.Context(), featured)
	if err != nil {
		log.Printf("list projects: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// @Tags Projects
// @Summary Get one project with all translations
// @Produce json
// @Param id path int true "Project id"
// @Success 200 {object} models.ProjectWithTranslations
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("get project: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to get project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// @Tags Projects
// @Summary Create a project with initial translations
// @Accept json
// @Produce json
// @Param body body models.CreateProjectRequest true "New project"
// @Success 201 {object} models.ProjectWithTranslations
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin, err := h.gate.require(r.Context())
	if err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	req.Slug = slug.Make(req.Slug)
	if req.Slug == "" {
		writeFieldError(w, "slug must contain at least one alphanumeric character", "slug")
		return
	}
	for i := range req.Translations {
		h.sanitizeInput(&req.Translations[i])
	}

	if req.IsFeatured && !h.checkFeaturedCap(w, r) {
		return
	}

	project, err := h.projects.Create(r.Context(), admin.ID, &req)
	if err != nil {
		log.Printf("create project: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// @Tags Projects
// @Summary Update a project's slug, featured flag, or cover image
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param body body models.UpdateProjectRequest true "Patch"
// @Success 200 {object} models.ProjectWithTranslations
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id} [patch]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.require(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}

	var req models.UpdateProjectRequest
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
	if req.Slug != nil {
		s := slug.Make(*req.Slug)
		if s == "" {
			writeFieldError(w, "slug must contain at least one alphanumeric character", "slug")
			return
		}
		req.Slug = &s
	}

	current, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("update project: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	// The cap only matters when this patch turns featuring on.
	if req.IsFeatured != nil && *req.IsFeatured && !current.Project.IsFeatured {
		if !h.checkFeaturedCap(w, r) {
			return
		}
	}

	project, err := h.projects.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("update project: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// @Tags Projects
// @Summary Create or replace one language's translation
// @Accept json
// @Produce json
// @Param id path int true "Project id"
// @Param lang path string true "Language code (en, hi, mr)"
// @Param body body models.ProjectTranslationInput true "Translation"
// @Success 200 {object} models.ProjectWithTranslations
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id}/translations/{lang} [put]
func (h *ProjectHandler) UpsertTranslation(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.require(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	lang := chi.URLParam(r, "lang")
	if !models.ValidLanguage(lang) {
		writeMessage(w, http.StatusNotFound, "Unsupported language")
		return
	}

	var req models.ProjectTranslationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// The path segment is authoritative for the language.
	req.Language = lang
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	h.sanitizeInput(&req)

	project, err := h.projects.UpsertTranslation(r.Context(), id, lang, &req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Printf("upsert project translation: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to save translation")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// checkFeaturedCap writes a 400 and returns false when featuring one more
// project would exceed the cap. The count is read before the write, so two
// concurrent requests can still race past it.
func (h *ProjectHandler) checkFeaturedCap(w http.ResponseWriter, r *http.Request) bool {
	count, err := h.projects.FeaturedCount(r.Context())
	if err != nil {
		log.Printf("count featured projects: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to check featured projects")
		return false
	}
	if count >= featuredProjectCap {
		writeFieldError(w,
			"at most "+strconv.Itoa(featuredProjectCap)+" projects can be featured",
			"isFeatured")
		return false
	}
	return true
}

func (h *ProjectHandler) sanitizeInput(in *models.ProjectTranslationInput) {
	if !h.sanitizeHTML {
		return
	}
	in.ContentHTML = sanitize.HTML(in.ContentHTML)
}

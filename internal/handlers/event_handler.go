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

	"sangam/internal/interfaces"
	"sangam/internal/models"
	"sangam/internal/repository"
	"sangam/internal/sanitize"
	"sangam/internal/slug"
)

type EventHandler struct {
	events       repository.EventRepository
	gate         *AdminGate
	sanitizeHTML bool
	v            *validator.Validate
}

func NewEventHandler(events repository.EventRepository, gate *AdminGate, sanitizeHTML bool) *EventHandler {
	return &EventHandler{
		events:       events,
		gate:         gate,
		sanitizeHTML: sanitizeHTML,
		v:            newValidator(),
	}
}

// @Tags Events
// @Summary List events with their translations
// @Produce json
// @Success 200 {array} models.EventWithTranslations
// @Router /api/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		log.Printf("list events: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// @Tags Events
// @Summary Get one event with all translations
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.EventWithTranslations
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}

	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		log.Printf("get event: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to get event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// @Tags Events
// @Summary Create an event with initial translations
// @Accept json
// @Produce json
// @Param body body models.CreateEventRequest true "New event"
// @Success 201 {object} models.EventWithTranslations
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin, err := h.gate.require(r.Context())
	if err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	var req models.CreateEventRequest
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

	event, err := h.events.Create(r.Context(), admin.ID, &req)
	if err != nil {
		var fieldErr *interfaces.InvalidFieldError
		if errors.As(err, &fieldErr) {
			writeValidationError(w, err)
			return
		}
		log.Printf("create event: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// @Tags Events
// @Summary Update an event's fields
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param body body models.UpdateEventRequest true "Patch"
// @Success 200 {object} models.EventWithTranslations
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{id} [patch]
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.require(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}

	var req models.UpdateEventRequest
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

	event, err := h.events.Update(r.Context(), id, &req)
	if err != nil {
		var fieldErr *interfaces.InvalidFieldError
		switch {
		case errors.Is(err, sql.ErrNoRows):
			writeMessage(w, http.StatusNotFound, "Event not found")
		case errors.As(err, &fieldErr):
			writeValidationError(w, err)
		default:
			log.Printf("update event: %v", err)
			writeMessage(w, http.StatusInternalServerError, "Failed to update event")
		}
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// @Tags Events
// @Summary Create or replace one language's translation
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param lang path string true "Language code (en, hi, mr)"
// @Param body body models.EventTranslationInput true "Translation"
// @Success 200 {object} models.EventWithTranslations
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{id}/translations/{lang} [put]
func (h *EventHandler) UpsertTranslation(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.require(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Event not found")
		return
	}
	lang := chi.URLParam(r, "lang")
	if !models.ValidLanguage(lang) {
		writeMessage(w, http.StatusNotFound, "Unsupported language")
		return
	}

	var req models.EventTranslationInput
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

	event, err := h.events.UpsertTranslation(r.Context(), id, lang, &req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		log.Printf("upsert event translation: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to save translation")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) sanitizeInput(in *models.EventTranslationInput) {
	if !h.sanitizeHTML {
		return
	}
	in.ContentHTML = sanitize.HTML(in.ContentHTML)
}

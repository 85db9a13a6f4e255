package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"sangam/internal/models"
	"sangam/internal/services"
)

type TranslateHandler struct {
	client *services.TranslateClient
	gate   *AdminGate
	v      *validator.Validate
}

func NewTranslateHandler(client *services.TranslateClient, gate *AdminGate) *TranslateHandler {
	return &TranslateHandler{client: client, gate: gate, v: newValidator()}
}

// @Tags Translate
// @Summary Machine-translate editor text between content languages
// @Description Best effort: when the upstream service fails, the source
// @Description text comes back unchanged with translated=false.
// @Accept json
// @Produce json
// @Param body body models.TranslateRequest true "Text and language pair"
// @Success 200 {object} models.TranslateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/translate [post]
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.require(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	var req models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if req.From == req.To {
		writeJSON(w, http.StatusOK, models.TranslateResponse{Text: req.Text, Translated: false})
		return
	}

	translated, err := h.client.Translate(r.Context(), req.Text, req.From, req.To)
	if err != nil {
		// Fall back to the source text so the editor keeps working.
		log.Printf("translate %s->%s: %v", req.From, req.To, err)
		writeJSON(w, http.StatusOK, models.TranslateResponse{Text: req.Text, Translated: false})
		return
	}
	writeJSON(w, http.StatusOK, models.TranslateResponse{Text: translated, Translated: true})
}

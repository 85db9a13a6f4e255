package handlers

import (
	"encoding/json"
	"net/http"

	"sangam/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Message: message})
}

func writeFieldError(w http.ResponseWriter, message, field string) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: message, Field: field})
}

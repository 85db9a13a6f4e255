package routes

import (
	"github.com/go-chi/chi/v5"

	"sangam/internal/config"
	"sangam/internal/contract"
	"sangam/internal/handlers"
)

func RegisterUploadRoutes(r chi.Router, s3Config *config.S3Config, gate *handlers.AdminGate) {
	handler := handlers.NewUploadHandler(s3Config, gate)

	r.MethodFunc(contract.UploadsRequestURL.Method, contract.UploadsRequestURL.ChiPattern(), handler.RequestURL)
}

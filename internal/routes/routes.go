package routes

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sangam/internal/config"
	"sangam/internal/handlers"
	"sangam/internal/middleware"
	"sangam/internal/repository"
	"sangam/internal/services"
)

// SetupRoutes builds the router: global middleware, the health and swagger
// endpoints, and every API route. s3Config may be nil when object storage
// is not configured; the upload endpoint is simply absent then.
func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config, sessions *scs.SessionManager) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(sessions.LoadAndSave)
	r.Use(middleware.WithUser(sessions))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	gate := handlers.NewAdminGate(repository.NewAdminRepository(db), cfg.AuthDistinct401)

	var email services.EmailSender
	if cfg.SMTPEnabled() {
		email = &services.SMTPSender{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		}
	}

	RegisterAuthRoutes(r, db, cfg, sessions)
	RegisterAdminRoutes(r, db, gate, email)
	RegisterProjectRoutes(r, db, gate, cfg.SanitizeContentHTML)
	RegisterEventRoutes(r, db, gate, cfg.SanitizeContentHTML)
	if s3Config != nil {
		RegisterUploadRoutes(r, s3Config, gate)
	}
	RegisterTranslateRoutes(r, services.NewTranslateClient(cfg.TranslateBaseURL), gate)
	RegisterSwaggerRoutes(r)

	return r
}

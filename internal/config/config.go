package config

import (
	"net/url"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string

	// CORSAllowedOrigins is a comma-free single origin or "*" in dev.
	CORSAllowedOrigins []string

	// AuthDistinct401 controls the admin-gate status mapping. When false
	// (the legacy behavior) every gate failure on a mutating endpoint maps
	// to 403; when true, a missing session maps to 401 and only real
	// authorization failures map to 403.
	AuthDistinct401 bool

	// SanitizeContentHTML runs submitted contentHtml through an HTML
	// sanitizer before storage. Off by default: the legacy system stored
	// admin-submitted HTML verbatim.
	SanitizeContentHTML bool

	// BootstrapSuperAdminEmail, when set, promotes that user to
	// super_admin on login if they have no admin record yet.
	BootstrapSuperAdminEmail string

	// TranslateBaseURL points at the MyMemory-compatible translation API.
	TranslateBaseURL string

	// SMTP settings for admin-invite notifications. Empty host disables.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() *Config {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "sangam")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	return &Config{
		Port:                     getEnv("PORT", "8080"),
		Environment:              getEnv("ENVIRONMENT", "development"),
		DatabaseURL:              databaseURL,
		CORSAllowedOrigins:       []string{getEnv("CORS_ALLOWED_ORIGIN", "*")},
		AuthDistinct401:          getBoolEnv("AUTH_DISTINCT_401", false),
		SanitizeContentHTML:      getBoolEnv("SANITIZE_CONTENT_HTML", false),
		BootstrapSuperAdminEmail: os.Getenv("BOOTSTRAP_SUPER_ADMIN_EMAIL"),
		TranslateBaseURL:         getEnv("TRANSLATE_BASE_URL", "https://api.mymemory.translated.net"),
		SMTPHost:                 os.Getenv("SMTP_HOST"),
		SMTPPort:                 getEnv("SMTP_PORT", "587"),
		SMTPUser:                 os.Getenv("SMTP_USER"),
		SMTPPass:                 os.Getenv("SMTP_PASS"),
		SMTPFrom:                 getEnv("SMTP_FROM", "no-reply@localhost"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"sangam/internal/config"
	"sangam/internal/db"
	"sangam/internal/db/migrations"
	"sangam/internal/middleware"
	"sangam/internal/routes"
)

// @title Sangam Content API
// @version 1.0
// @description Multilingual content publishing API for projects and events.
// @BasePath /
func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var s3Config *config.S3Config
	if os.Getenv("S3_BUCKET_NAME") != "" {
		s3Config, err = config.NewS3Config()
		if err != nil {
			log.Fatalf("Failed to configure object storage: %v", err)
		}
	} else {
		log.Println("S3_BUCKET_NAME not set, upload endpoint disabled")
	}

	sessions := middleware.NewSessionManager(database.DB, cfg.IsDevelopment())

	router := routes.SetupRoutes(database.DB, cfg, s3Config, sessions)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give in-flight requests 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

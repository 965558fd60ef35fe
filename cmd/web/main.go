package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/crucial707/scheduler/internal/config"
	"github.com/crucial707/scheduler/internal/db"
	"github.com/crucial707/scheduler/internal/session"
	"github.com/crucial707/scheduler/internal/web"
)

func main() {
	// Optional .env for local development; real deployments set the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupLogging(cfg.LogFormat)

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(cfg.DatabaseURL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	useTLS := cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""
	sessions := session.NewManager([]byte(cfg.SessionSecret), time.Duration(cfg.SessionTTLHours)*time.Hour)
	router := web.NewRouter(database, sessions, useTLS)

	if useTLS {
		slog.Info("starting server", "addr", cfg.Addr(), "tls", true)
		err = http.ListenAndServeTLS(cfg.Addr(), cfg.TLSCertFile, cfg.TLSKeyFile, router)
	} else {
		slog.Info("starting server", "addr", cfg.Addr(), "tls", false)
		err = http.ListenAndServe(cfg.Addr(), router)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setupLogging(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "library-of-things-backend/internal/api/http"
	"library-of-things-backend/internal/config"
	"library-of-things-backend/internal/jobs"
	"library-of-things-backend/internal/logger"
	"library-of-things-backend/internal/repository/postgres"
	"library-of-things-backend/internal/scheduler"
	"library-of-things-backend/internal/security"
	"library-of-things-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library of Things backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryDays)

	authSvc := service.NewAuthService(store, tokenManager)
	userSvc := service.NewUserService(store)
	itemSvc := service.NewItemService(store)
	rentalSvc := service.NewRentalService(store)
	reviewSvc := service.NewReviewService(store)

	handlers := httpapi.NewHandlers(authSvc, userSvc, itemSvc, rentalSvc, reviewSvc)
	router := httpapi.NewRouter(handlers, tokenManager)

	jobRunner := jobs.NewJobRunner(db, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}

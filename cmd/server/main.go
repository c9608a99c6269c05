package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/Birthday_Wall/internal/config"
	"github.com/Dias221467/Birthday_Wall/internal/database"
	"github.com/Dias221467/Birthday_Wall/internal/handlers"
	"github.com/Dias221467/Birthday_Wall/internal/jobs"
	"github.com/Dias221467/Birthday_Wall/internal/realtime"
	"github.com/Dias221467/Birthday_Wall/internal/repository"
	"github.com/Dias221467/Birthday_Wall/internal/scheduler"
	"github.com/Dias221467/Birthday_Wall/internal/services"
	"github.com/Dias221467/Birthday_Wall/pkg/logger"
	"github.com/Dias221467/Birthday_Wall/pkg/validator"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	// The first connection attempt is not fatal; requests retry it.
	manager := database.NewManager(cfg, nil)
	manager.Init(context.Background())

	// --- Repositories ---
	wishRepo := repository.NewWishRepository(manager)
	slideRepo := repository.NewSlideRepository(manager)

	// --- Services ---
	val := validator.New()
	hub := realtime.NewHub(cfg.AllowedOrigins)
	wishService := services.NewWishService(wishRepo, val, nil, hub)
	slideService := services.NewSlideService(slideRepo, val)
	statsService := services.NewStatsService(wishRepo, slideRepo)
	uploadService := services.NewUploadService(cfg.UploadDir, "/uploads")

	// --- Handlers ---
	router := handlers.NewRouter(handlers.Routes{
		DB:        manager,
		Wishes:    handlers.NewWishHandler(wishService),
		Slides:    handlers.NewSlideHandler(slideService),
		Uploads:   handlers.NewUploadHandler(uploadService, cfg.MaxUploadBytes),
		Status:    handlers.NewStatusHandler(manager, statsService, hub),
		UploadDir: uploadService.Dir(),
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	reporter := jobs.NewStatsReporter(statsService, logger.Log)
	statsCron, err := scheduler.StartStatsCron(cfg.StatsSchedule, reporter)
	if err != nil {
		logger.Log.WithError(err).Warn("Invalid stats schedule, report disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server")

	if statsCron != nil {
		<-statsCron.Stop().Done()
	}
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server shutdown failed")
	}
	if err := manager.Close(ctx); err != nil {
		logger.Log.WithError(err).Error("Failed to close database connection")
	}
}

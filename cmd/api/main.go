package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recurring-task-management/config"
	_ "recurring-task-management/docs" // Swagger docs
	"recurring-task-management/internal/httpserver"
	"recurring-task-management/internal/recurrence/repository/sqlite"
	"recurring-task-management/internal/recurrence/usecase"
	"recurring-task-management/pkg/gcalendar"
	"recurring-task-management/pkg/log"
)

// @title       Recurring Task Management API
// @description Lazy, idempotent scheduling engine for recurring tasks: series CRUD, reconciliation on read, legacy rollover, calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Recurring Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database %s: %v", cfg.SQLite.Path, err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite database ready at %s", cfg.SQLite.Path)

	// 4. Google Calendar client (optional)
	var calendar usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             db,
		Calendar:       calendar,
		APIToken:       cfg.Auth.APIToken,
		SyncRatePerMin: cfg.Sync.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

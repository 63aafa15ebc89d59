package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-nlp/config"
	_ "task-nlp/docs" // Swagger docs
	"task-nlp/internal/httpserver"
	"task-nlp/internal/middleware"
	taskHTTP "task-nlp/internal/task/delivery/http"
	"task-nlp/internal/task/usecase"
	"task-nlp/pkg/log"
)

// @title       Task NLP API
// @description Extracts task titles and due dates from pt-BR natural language.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Task NLP...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	loc, err := time.LoadLocation(cfg.Extractor.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extractor.Timezone, err)
		loc = time.UTC
	}
	logger.Infof(ctx, "Reference clock timezone: %s", loc)

	taskUC := usecase.New(logger, loc)
	taskHandler := taskHTTP.New(logger, taskUC)

	mw := middleware.New(logger, middleware.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		MaxClients:       cfg.RateLimit.MaxClients,
		ClientTTL:        cfg.RateLimit.ClientTTL,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-leadform-backend/config"
	_ "go-leadform-backend/docs" // Important for Swagger
	v1 "go-leadform-backend/internal/delivery/http/v1"
	"go-leadform-backend/internal/usecase"
	"go-leadform-backend/pkg/logger"
	"go-leadform-backend/pkg/telegram"
	"go-leadform-backend/pkg/validation"
)

// @title           Lead Form Backend API
// @version         1.0
// @description     Lead-capture backend delivering submissions to a Telegram chat.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting lead form backend", "port", cfg.Port)

	// 3. Setup Telegram client
	tgClient := telegram.NewClient(cfg)
	if !tgClient.IsConfigured() {
		logger.Log.Warn("Telegram client not fully configured - lead delivery will be unavailable")
	}

	// 4. Setup UseCases
	leadUC := usecase.NewLeadUsecase(tgClient, validation.NewLeadValidator())

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		LeadUC: leadUC,
		Config: cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mergington-high/activities/internal/config"
	"github.com/mergington-high/activities/internal/handler"
	"github.com/mergington-high/activities/internal/logger"
	"github.com/mergington-high/activities/internal/service"
	"github.com/mergington-high/activities/internal/store"
)

func main() {
	// ── 1. Configuration and logging ──────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.Environment)
	defer func() { _ = zlog.Sync() }()

	// One id per process; a new id after restart signals the store reset.
	instanceID := uuid.NewString()
	zlog = zlog.With(zap.String("instance_id", instanceID))

	// ── 2. Wire up layers ────────────────────────────────────────────────
	activityStore := store.New(store.Seed())
	activitySvc := service.NewActivityService(activityStore)
	activityHandler := handler.NewActivityHandler(activitySvc)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.NewRouter(activityHandler, zlog, cfg.StaticDir, instanceID)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}

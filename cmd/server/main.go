package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"otsus/internal/decision"
	decisionHandler "otsus/internal/decision/handler"
	decisionMetrics "otsus/internal/decision/metrics"
	"otsus/internal/platform/config"
	"otsus/internal/platform/httpserver"
	"otsus/internal/platform/logger"
	httptransport "otsus/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the decision package.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	service := decision.NewService(log, decisionMetrics.New())
	handler := decisionHandler.New(service, log)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting otsus", "addr", cfg.Addr, "env", cfg.Env)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("otsus stopped")
}

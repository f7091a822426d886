package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/activities/internal/api"
	"example.com/activities/internal/config"
	"example.com/activities/internal/domain"
	"example.com/activities/internal/logging"
	"example.com/activities/internal/roster"
	httptransport "example.com/activities/internal/transport/http"
	"example.com/activities/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	store := roster.New(cfg.EnforceCapacity)
	service := domain.NewService(store)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/static/", web.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	wrapped := httptransport.RequestLogger(logger)(httptransport.CORS(cfg.AllowedOrigin)(mux))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, wrapped)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("activities service listening",
			zap.String("address", cfg.HTTPAddress),
			zap.Bool("enforce_capacity", cfg.EnforceCapacity),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}

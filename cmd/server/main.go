package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/api"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/config"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	svc, err := cfg.BuildService()
	if err != nil {
		slog.Error("failed to build service", "error", err)
		os.Exit(1)
	}

	authorizer, err := cfg.BuildAuthorizer()
	if err != nil {
		slog.Error("failed to build authorizer", "error", err)
		os.Exit(1)
	}
	if cfg.AuthMode == "static" {
		slog.Warn("admin API is using the static authorizer; do not run this in production")
	}

	subscriber, err := cfg.BuildNewsletter()
	if err != nil {
		slog.Error("failed to build newsletter client", "error", err)
		os.Exit(1)
	}

	routerConfig := api.RouterConfig{
		Service:    svc,
		Authorizer: authorizer,
	}
	if subscriber != nil {
		routerConfig.Subscriber = subscriber
	} else {
		slog.Info("newsletter credentials absent, signup route disabled")
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.NewRouter(routerConfig),
	}

	go func() {
		slog.Info("content server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"auth_mode", cfg.AuthMode)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}

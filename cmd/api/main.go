package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mvsaqua/aquastore-backend/api/routes"
	"github.com/mvsaqua/aquastore-backend/internal/assistant"
	"github.com/mvsaqua/aquastore-backend/internal/auth"
	"github.com/mvsaqua/aquastore-backend/internal/clouddb"
	"github.com/mvsaqua/aquastore-backend/internal/state"
	"github.com/mvsaqua/aquastore-backend/pkg/config"
	"github.com/mvsaqua/aquastore-backend/pkg/env"
	"github.com/mvsaqua/aquastore-backend/pkg/localdb"
	"github.com/mvsaqua/aquastore-backend/pkg/logger"
	"github.com/mvsaqua/aquastore-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := localdb.Open(context.Background(), cfg.LocalDB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open local store", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing local store", err)
		}
	}()

	db := clouddb.New(store, logg)
	defer db.Close()

	holder := state.Open(context.Background(), db, store, logg, cfg.Store)
	defer func() {
		if err := holder.Close(context.Background()); err != nil {
			logg.Error(context.Background(), "error closing state", err)
		}
	}()

	authService, err := auth.NewService(auth.ServiceParams{
		Authenticator: auth.NewStaticAuthenticator(cfg.Admin),
		Sessions:      holder,
		JWTConfig:     cfg.JWT,
		AdminConfig:   cfg.Admin,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	var assistantService assistant.Service
	if cfg.Genai.APIKey != "" {
		client, err := assistant.NewClient(context.Background(), cfg.Genai)
		if err != nil {
			logg.Error(context.Background(), "failed to create genai client", err)
			os.Exit(1)
		}
		assistantService, err = assistant.NewService(assistant.ServiceParams{
			Models: client.Models,
			Model:  cfg.Genai.Model,
			Logger: logg,
		})
		if err != nil {
			logg.Error(context.Background(), "failed to create assistant service", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "genai api key not set, assistant disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
		"dir":  cfg.LocalDB.Dir,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:    cfg,
			Logger:    logg,
			State:     holder,
			Auth:      authService,
			Assistant: assistantService,
			Metrics:   httpMetrics,
			Registry:  registry,
		}),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

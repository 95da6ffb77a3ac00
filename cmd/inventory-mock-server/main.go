// Package main boots the inventory mock API HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/inventory-task-simulator/internal/config"
	"github.com/fairyhunter13/inventory-task-simulator/internal/endpoint"
	"github.com/fairyhunter13/inventory-task-simulator/internal/fixture"
	httpapi "github.com/fairyhunter13/inventory-task-simulator/internal/http"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		obs.Logger.Error("config_invalid", "error", err)
		os.Exit(1)
	}
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("service_starting", "addr", cfg.HTTPAddr, "seed_path", cfg.SeedPath)

	seed, err := fixture.Load(cfg.SeedPath)
	if err != nil {
		obs.Logger.Error("seed_load_failed", "error", err)
		os.Exit(1)
	}
	metrics := obs.NewMetrics()
	ep := endpoint.New(seed, endpoint.WithMetrics(metrics))
	obs.Logger.Info("store_seeded",
		"products", ep.Products.Len(),
		"categories", ep.Categories.Len(),
		"tasks", ep.Tasks.Len(),
	)

	app := httpapi.NewApp(cfg, ep, metrics)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"layover-os/config"
	_ "layover-os/docs" // Swagger docs
	"layover-os/internal/amenity/delivery/event"
	"layover-os/internal/amenity/simulator"
	"layover-os/internal/bootstrap"
	conciergeHTTP "layover-os/internal/concierge/delivery/http"
	"layover-os/internal/httpserver"
	"layover-os/internal/middleware"
	"layover-os/pkg/tracing"
)

// @title       LayoverOS Concierge API
// @description Intent-routing airport concierge: amenity search, flight status and lounge checkout.
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
	logger := bootstrap.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting LayoverOS...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logger.Warnf(ctx, "Tracing disabled: %v", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	// 4. Concierge domain
	container := bootstrap.New(cfg, logger)
	defer container.Close(context.Background())

	conciergeUC, err := container.ConciergeUseCase(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to initialize concierge: ", err)
		return
	}

	// 5. Live amenity status (optional)
	if cfg.Simulator.Enabled {
		if err := startSimulator(ctx, container); err != nil {
			logger.Warnf(ctx, "Amenity simulator not started: %v", err)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.RateLimit),
		ConciergeHandler: conciergeHTTP.New(logger, conciergeUC, cfg.Concierge.DefaultLocation),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func startSimulator(ctx context.Context, container *bootstrap.Container) error {
	cfg := container.Config()
	uc, err := container.AmenityUseCase(ctx)
	if err != nil {
		return err
	}

	bus := container.PubSub()
	if err := event.New(container.Logger(), uc, bus).Consume(ctx); err != nil {
		return err
	}

	sim := simulator.New(container.Logger(), uc, bus, simulator.Config{
		MinInterval: bootstrap.ParseDuration(cfg.Simulator.MinInterval, simulator.DefaultMinInterval),
		MaxInterval: bootstrap.ParseDuration(cfg.Simulator.MaxInterval, simulator.DefaultMaxInterval),
	})
	go sim.Run(ctx)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"layover-os/config"
	"layover-os/internal/amenity/delivery/event"
	"layover-os/internal/amenity/simulator"
	"layover-os/internal/bootstrap"
)

// main is the entry point for the live amenity status service.
// It runs the status simulator and applies every published change to the
// amenity index through the event consumer.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Subscribe the consumer, start the publisher
//  4. Run until signalled
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := bootstrap.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting amenity status consumer...")

	container := bootstrap.New(cfg, logger)
	defer container.Close(context.Background())

	amenityUC, err := container.AmenityUseCase(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to initialize amenity use case: ", err)
		return
	}

	bus := container.PubSub()
	if err := event.New(logger, amenityUC, bus).Consume(ctx); err != nil {
		logger.Error(ctx, "Failed to subscribe status consumer: ", err)
		return
	}

	sim := simulator.New(logger, amenityUC, bus, simulator.Config{
		MinInterval: bootstrap.ParseDuration(cfg.Simulator.MinInterval, simulator.DefaultMinInterval),
		MaxInterval: bootstrap.ParseDuration(cfg.Simulator.MaxInterval, simulator.DefaultMaxInterval),
	})

	logger.Info(ctx, "Consumer service running. Press Ctrl+C to stop.")
	sim.Run(ctx)

	logger.Info(ctx, "Consumer service stopped")
}

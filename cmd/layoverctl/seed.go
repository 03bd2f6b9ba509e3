package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"layover-os/internal/amenity"
	"layover-os/internal/flight"
)

const defaultAmenityFile = "data/amenities.json"

func newSeedCmd() *cobra.Command {
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into the stores",
	}
	seed.AddCommand(newSeedFlightsCmd(), newSeedAmenitiesCmd())
	return seed
}

func newSeedFlightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flights",
		Short: "Create the flights table and upsert the demo schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			container, err := loadContainer()
			if err != nil {
				return err
			}
			defer container.Close(ctx)

			repo, err := container.FlightRepository(ctx)
			if err != nil {
				return err
			}
			if err := repo.AutoMigrate(ctx); err != nil {
				return err
			}

			flights := flight.DemoFlights(time.Now())
			if err := repo.Upsert(ctx, flights); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d flights\n", len(flights))
			return nil
		},
	}
}

func newSeedAmenitiesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "amenities",
		Short: "Embed and index the amenity catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			items, err := readAmenities(file)
			if err != nil {
				return err
			}

			container, err := loadContainer()
			if err != nil {
				return err
			}
			defer container.Close(ctx)

			repo, err := container.AmenityRepository(ctx)
			if err != nil {
				return err
			}
			if err := repo.EnsureSchema(ctx, container.Config().Qdrant.VectorSize); err != nil {
				return err
			}

			uc, err := container.AmenityUseCase(ctx)
			if err != nil {
				return err
			}
			out, err := uc.Seed(ctx, items)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d amenities from %s\n", out.Upserted, file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultAmenityFile, "JSON array of amenities")
	return cmd
}

func readAmenities(path string) ([]amenity.SeedAmenity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var items []amenity.SeedAmenity
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s holds no amenities", path)
	}
	return items, nil
}

package main

import (
	"github.com/spf13/cobra"

	"layover-os/config"
	"layover-os/internal/bootstrap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "layoverctl",
		Short:         "Operate a LayoverOS deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSeedCmd(), newChatCmd())
	return root
}

// loadContainer reads config and returns an unwired container. Callers
// must Close it.
func loadContainer() (*bootstrap.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, bootstrap.NewLogger(cfg.Logger)), nil
}

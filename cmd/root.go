package main

import (
	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vital-image-analytics",
		Short:         "Analyze medical images with a hosted multimodal model",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the env-style config file")

	root.AddCommand(newServeCmd(), newAnalyzeCmd())
	return root
}

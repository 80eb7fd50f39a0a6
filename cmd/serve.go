package main

import (
	"github.com/VictorKimathi/medical-ai-assistant/internal/application"
	config "github.com/VictorKimathi/medical-ai-assistant/internal/infrastructure/configs"
	"github.com/VictorKimathi/medical-ai-assistant/pkg/logger"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfigs(configPath)
			if err != nil {
				return err
			}

			log, closer, err := logger.NewLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			return application.App{Cfg: cfg, Logger: log}.Run(cmd.Context())
		},
	}
}

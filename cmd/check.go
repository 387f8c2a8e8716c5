package main

import (
	"github.com/spf13/cobra"

	"github.com/frain-dev/httpauth/config"
	"github.com/frain-dev/httpauth/pkg/log"
)

func addCheckCommand(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a configuration file without starting a server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			logger.WithFields(log.Fields{
				"stages":    len(cfg.Auth.Stages),
				"verbosity": cfg.Auth.Verbosity.String(),
			}).Info("configuration is valid")
			return nil
		},
	}
}

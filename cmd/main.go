package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/frain-dev/httpauth/pkg/log"
)

func main() {
	logger := log.NewStdLogger()

	cmd := &cobra.Command{
		Use:   "httpauth",
		Short: "Pluggable HTTP Basic-Authentication verification engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}

			lvl, err := log.ParseLevel(level)
			if err != nil {
				return err
			}

			logger.SetLevel(lvl)
			return nil
		},
	}

	cmd.PersistentFlags().String("config", "./httpauth.json", "Configuration file for httpauth")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error, fatal)")

	cmd.AddCommand(addServerCommand(logger))
	cmd.AddCommand(addHashCommand())
	cmd.AddCommand(addCheckCommand(logger))

	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

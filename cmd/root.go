package cmd

import (
	"fmt"
	"os"

	"modhangar/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "modhangar",
	Short: "Mod Hangar Service",
	Long: `Mod Hangar ingests game mod content packages into a content-addressed
catalog: ships, weapons, hullmods, ship systems, fighter wings and their
sprites, deduplicated across mod versions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug level config so CLI users get
		// readable ISO8601 timestamps instead of epoch values.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

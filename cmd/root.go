package cmd

import (
	"fmt"
	"os"

	"blocks-generator/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blocks-generator",
	Short: "Infinite Block Generator Service",
	Long: `Blocks Generator tracks marker blocks that refill the block above them
with a random material from a configured palette, forever.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug config gives ISO8601 timestamps for CLI output
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

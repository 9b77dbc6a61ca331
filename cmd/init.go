package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/josephlewis42/goosecli/core/config"
	"github.com/spf13/cobra"
)

// initCmd intializes the interpreter configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the interpreter configuration in the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "init"})

		return config.Initialize(cfgPath, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// shellCmd starts an interactive session.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run commands interactively.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfigOrDefault()
		if err != nil {
			return err
		}

		interp, closer, err := newInterpreter(cmd, configuration)
		if err != nil {
			return err
		}
		defer closer.Close()

		return interp.Start(os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

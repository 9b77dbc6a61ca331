package cmd

import (
	"github.com/spf13/cobra"
)

var runDebug bool

// runCmd replays a script as the entry point of the program.
var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run the commands in a script file, exiting with status 1 on the first failure.",
	Args:  cobra.ExactArgs(1),
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

		// Failures are reported by the interpreter, which also ends the process.
		interp.StartFromFile(args[0], runDebug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runDebug, "debug", "d", false, "echo each line before running it")
}

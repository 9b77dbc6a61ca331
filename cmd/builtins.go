package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/goosecli/commands"
	"github.com/josephlewis42/goosecli/core"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands available in the interpreter.",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		for _, d := range commands.ListCommands(&commands.Env{Out: io.Discard}) {
			owner := ""
			if d.OwnerName() != "" {
				owner = fmt.Sprintf(" (owner: %s)", d.OwnerName())
			}
			fmt.Fprintf(w, "%s%s\n", d.Name, owner)
		}

		for _, name := range []string{core.PrintKeyword, core.HelpKeyword, core.CallKeyword, core.WriteScriptKeyword} {
			fmt.Fprintln(w, "builtin:"+name)
		}
		fmt.Fprintln(w, "builtin:"+strings.Join(core.ExitKeywords, ","))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}

package cmd

import (
	"fmt"
	"io"

	"github.com/josephlewis42/goosecli/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var (
	reportSession    string
	reportTotalsOnly bool
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the interpreter event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Summarize commands, failures and scripts from the event log.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := config.ReadEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, logger.ForSession(reportSession, report.Update)); err != nil {
			return err
		}

		if reportSession != "" && report.LogEntries == 0 {
			return fmt.Errorf("no events for session %q", reportSession)
		}

		return printReport(cmd.OutOrStdout(), report, reportTotalsOnly)
	},
}

func printReport(w io.Writer, report *logger.Report, totalsOnly bool) error {
	var body interface{} = report
	if totalsOnly {
		body = report.Totals
	}

	out, err := yaml.Marshal(body)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(out))

	if report.Totals.Commands > 0 {
		fmt.Fprintf(w, "# %d of %d command invocations failed (%.1f%%)\n",
			report.Totals.Failures, report.Totals.Commands, 100*report.Totals.FailureRate())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)

	reportCommand.Flags().StringVarP(&reportSession, "session", "s", "", "only report events from this session ID")
	reportCommand.Flags().BoolVar(&reportTotalsOnly, "totals", false, "only print the event totals")
}

package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/josephlewis42/goosecli/commands"
	"github.com/josephlewis42/goosecli/core"
	"github.com/josephlewis42/goosecli/core/config"
	"github.com/josephlewis42/goosecli/core/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newInterpreter builds an interpreter over the sample commands. The returned
// closer flushes the logs.
func newInterpreter(cmd *cobra.Command, configuration *config.Configuration) (*core.Interpreter, io.Closer, error) {
	out := cmd.OutOrStdout()
	closers := multiCloser{}

	appLog, err := configuration.OpenAppLog()
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, appLog)

	diagnostics := log.NewWithOptions(io.MultiWriter(appLog, cmd.ErrOrStderr()), log.Options{
		Prefix:          "goosecli",
		Level:           configuration.Level(),
		ReportTimestamp: true,
	})

	eventLog, err := configuration.OpenEventLog()
	if err != nil {
		closers.Close()
		return nil, nil, err
	}
	closers = append(closers, eventLog)
	events := logger.NewJsonLinesLogRecorder(eventLog).NewSession()
	diagnostics.Debug("starting session", "session_id", events.SessionID())

	historyPath, err := configuration.HistoryPath()
	if err != nil {
		diagnostics.Warn("couldn't expand history file, disabling history", "err", err)
		historyPath = ""
	}

	interp, err := core.New(
		commands.ListCommands(&commands.Env{Out: out}),
		core.WithOutput(out),
		core.WithPrompt(configuration.Prompt),
		core.WithDescription(configuration.Description),
		core.WithColor(configuration.UseColor(isTerminal(out))),
		core.WithLogger(diagnostics),
		core.WithEventRecorder(events),
		core.WithHistoryFile(historyPath),
	)
	if err != nil {
		closers.Close()
		return nil, nil, err
	}

	return interp, closers, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var firstErr error
	for i := len(m) - 1; i >= 0; i-- {
		if err := m[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

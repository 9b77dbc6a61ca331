package core

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/josephlewis42/goosecli/core/logger"
	"github.com/spf13/afero"
)

// EventRecorder receives interpreter events for auditing, see the logger
// package for the event names.
type EventRecorder interface {
	Record(event string, fields map[string]interface{}) error
}

// Interpreter runs instructions against a registry of commands.
type Interpreter struct {
	registry *Registry
	session  *Session
	owners   *ownerCache

	fs          afero.Fs
	out         io.Writer
	prompt      string
	description string
	historyFile string
	colors      colorPrinter
	logger      *log.Logger
	events      EventRecorder
	exit        func(int)

	// replayDepth counts the script replays currently running.
	replayDepth int
	// recordDepth is the deepest replay whose lines go into the history.
	recordDepth int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithPrompt sets the prefix shown before each interactive read.
func WithPrompt(prompt string) Option {
	return func(i *Interpreter) { i.prompt = prompt }
}

// WithDescription sets the text shown at the top of the full help.
func WithDescription(description string) Option {
	return func(i *Interpreter) { i.description = description }
}

// WithOutput sets where command output, prompts and errors are written.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithFs sets the filesystem scripts are read from and written to.
func WithFs(fs afero.Fs) Option {
	return func(i *Interpreter) { i.fs = fs }
}

// WithSession shares existing variables and history with the interpreter.
func WithSession(session *Session) Option {
	return func(i *Interpreter) { i.session = session }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// WithEventRecorder sets the recorder receiving interpreter events.
func WithEventRecorder(events EventRecorder) Option {
	return func(i *Interpreter) { i.events = events }
}

// WithColor enables or disables colored output.
func WithColor(enabled bool) Option {
	return func(i *Interpreter) { i.colors = colorPrinter{enabled: enabled} }
}

// WithExitFunc replaces os.Exit for top-level script failures.
func WithExitFunc(exit func(int)) Option {
	return func(i *Interpreter) { i.exit = exit }
}

// WithHistoryFile sets the file interactive line editing keeps its history
// in. It's unrelated to the session history exported by write-script.
func WithHistoryFile(path string) Option {
	return func(i *Interpreter) { i.historyFile = path }
}

// New creates an interpreter for the given commands.
func New(descriptors []*Descriptor, opts ...Option) (*Interpreter, error) {
	i := &Interpreter{
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
		exit:   os.Exit,
		events: logger.NopRecorder{},
	}
	for _, opt := range opts {
		opt(i)
	}

	if i.session == nil {
		i.session = NewSession()
	}
	if i.logger == nil {
		i.logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "interpreter",
			Level:  log.WarnLevel,
		})
	}

	registry, err := NewRegistry(descriptors, i.logger)
	if err != nil {
		return nil, err
	}
	i.registry = registry
	i.owners = newOwnerCache()

	return i, nil
}

// Registry returns the commands known to the interpreter.
func (i *Interpreter) Registry() *Registry {
	return i.registry
}

// Session returns the interpreter's variables and history.
func (i *Interpreter) Session() *Session {
	return i.session
}

// Execute runs a single raw line: comments are stripped, blank lines are
// ignored and successful lines are added to the history. Exit keywords are
// only meaningful to Start and RunFile.
func (i *Interpreter) Execute(raw string) (interface{}, error) {
	line, err := PrepareLine(raw)
	if err != nil || line == "" {
		return nil, err
	}
	return i.executeLine(line)
}

// executeLine runs a line that's already been trimmed and stripped of
// comments.
func (i *Interpreter) executeLine(line string) (interface{}, error) {
	parsed, err := ParseLine(line)
	if err != nil {
		return nil, err
	}

	result, err := i.Dispatch(parsed)
	if err != nil {
		return nil, err
	}

	if i.replayDepth <= i.recordDepth {
		i.session.History.Record(line)
	}
	return result, nil
}

func (i *Interpreter) recordEvent(event string, fields map[string]interface{}) {
	if err := i.events.Record(event, fields); err != nil {
		i.logger.Warn("couldn't record event", "event", event, "err", err)
	}
}

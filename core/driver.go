package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/goosecli/core/logger"
	"golang.org/x/term"
)

// LineReader reads instructions one line at a time.
type LineReader interface {
	// ReadLine shows the prompt and returns the next line without its line
	// ending. It returns io.EOF at the end of input.
	ReadLine(prompt string) (string, error)
	Close() error
}

// pipeReader reads from a pipe or file, printing the prompt itself.
type pipeReader struct {
	reader *bufio.Reader
	out    io.Writer
}

var _ LineReader = (*pipeReader)(nil)

func (p *pipeReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return readLine(p.reader)
}

func (p *pipeReader) Close() error {
	return nil
}

// readLine returns the next line without its line ending. Lines have no
// length limit. The last line doesn't need a trailing newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readlineReader edits lines on a terminal.
type readlineReader struct {
	rl *readline.Instance
}

var _ LineReader = (*readlineReader)(nil)

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// ^C abandons the current line.
		return "", nil
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// newLineReader uses line editing when in is a terminal.
func (i *Interpreter) newLineReader(in io.Reader) (LineReader, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Stdin:        f,
			Stdout:       i.out,
			HistoryFile:  i.historyFile,
			AutoComplete: i.completer(),
		})
		if err != nil {
			return nil, err
		}
		return &readlineReader{rl: rl}, nil
	}

	return &pipeReader{reader: bufio.NewReader(in), out: i.out}, nil
}

// completer completes command names and built-ins at the start of a line.
func (i *Interpreter) completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range i.registry.Names() {
		items = append(items, readline.PcItem(name))
	}
	items = append(items,
		readline.PcItem(PrintKeyword),
		readline.PcItem(HelpKeyword),
		readline.PcItem(CallKeyword, readline.PcItem("-f"), readline.PcItem("--file")),
		readline.PcItem(WriteScriptKeyword, readline.PcItem("-f"), readline.PcItem("--file")),
		readline.PcItem("exit"),
	)
	return readline.NewPrefixCompleter(items...)
}

// Start runs instructions from in until an exit keyword or the end of input.
// Failing lines are reported and the loop carries on.
func (i *Interpreter) Start(in io.Reader) error {
	reader, err := i.newLineReader(in)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		raw, err := reader.ReadLine(i.prompt)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		line, err := PrepareLine(raw)
		if err == nil && IsExitKeyword(line) {
			return nil
		}
		if err == nil && line != "" {
			_, err = i.executeLine(line)
		}
		if err != nil {
			i.reportInteractiveError(strings.TrimSpace(raw), err)
		}
	}
}

func (i *Interpreter) reportInteractiveError(input string, err error) {
	var replayErr *ReplayError
	if errors.As(err, &replayErr) {
		// Already reported by the replay.
		return
	}

	header := fmt.Sprintf("Error at command: '%s'.", input)
	fmt.Fprintln(i.out, i.colors.Sprint(colorBoldRed, header))
	fmt.Fprintln(i.out, Translate(err))
}

// RunFile replays the instructions in a script file against the session.
// The first failing line is reported and stops the replay, which returns a
// *ReplayError. Debug echoes every line before running it.
func (i *Interpreter) RunFile(path string, debug bool) error {
	fd, err := i.fs.Open(path)
	if err != nil {
		ioErr := &IOError{Op: "read", Path: path, Err: err}
		fmt.Fprintln(i.out, Translate(ioErr))
		return &ReplayError{File: path, Err: ioErr}
	}
	defer fd.Close()

	i.replayDepth++
	defer func() { i.replayDepth-- }()

	i.recordEvent(logger.EventScript, map[string]interface{}{
		"file": path,
	})
	i.logger.Debug("running script", "file", path, "depth", i.replayDepth)

	reader := bufio.NewReader(fd)
	lineNumber := 0
	for {
		raw, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			ioErr := &IOError{Op: "read", Path: path, Err: err}
			fmt.Fprintln(i.out, Translate(ioErr))
			return &ReplayError{File: path, Line: lineNumber, Err: ioErr}
		}
		lineNumber++

		line, err := PrepareLine(raw)
		if err == nil {
			if IsExitKeyword(line) {
				return nil
			}
			if line == "" {
				continue
			}
			if debug {
				fmt.Fprintln(i.out, line)
			}
			_, err = i.executeLine(line)
		}
		if err != nil {
			return i.reportReplayError(path, lineNumber, strings.TrimSpace(raw), err)
		}
	}
}

func (i *Interpreter) reportReplayError(path string, lineNumber int, input string, err error) error {
	header := fmt.Sprintf("Error at command: '%s', at line %d, in file \"%s\".", input, lineNumber, path)
	fmt.Fprintln(i.out, i.colors.Sprint(colorBoldRed, header))

	var nested *ReplayError
	if !errors.As(err, &nested) {
		fmt.Fprintln(i.out, Translate(err))
	}
	return &ReplayError{File: path, Line: lineNumber, Text: input, Err: err}
}

// StartFromFile replays a script as the program's entry point: every line is
// recorded in the history and a failure ends the process with status 1.
func (i *Interpreter) StartFromFile(path string, debug bool) error {
	i.recordDepth = 1
	defer func() { i.recordDepth = 0 }()

	if err := i.RunFile(path, debug); err != nil {
		fmt.Fprintln(i.out, "Exit...")
		i.exit(1)
		return err
	}
	return nil
}

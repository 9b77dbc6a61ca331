package core

import (
	"bufio"
	"os"

	"github.com/spf13/afero"
)

// History is the append-only log of lines that ran successfully.
type History struct {
	lines []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Record appends a line.
func (h *History) Record(line string) {
	h.lines = append(h.lines, line)
}

// Lines returns a copy of the recorded lines in order.
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Len returns the number of recorded lines.
func (h *History) Len() int {
	return len(h.lines)
}

// Export writes every recorded line to path, one per line, truncating any
// existing file.
func (h *History) Export(fs afero.Fs, path string) error {
	fd, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	w := bufio.NewWriter(fd)
	for _, line := range h.lines {
		w.WriteString(line)
		w.WriteString("\n")
	}

	if err := w.Flush(); err != nil {
		fd.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := fd.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Session is the mutable state shared by every line an interpreter runs.
type Session struct {
	Variables *Variables
	History   *History
}

// NewSession creates a session with empty variables and history.
func NewSession() *Session {
	return &Session{
		Variables: NewVariables(),
		History:   NewHistory(),
	}
}

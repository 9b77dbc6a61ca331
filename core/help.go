package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const helpHint = "Appending a command with the -h flag will print the description and parameters for the command."

var (
	colorBold    = color.New(color.Bold)
	colorBoldRed = color.New(color.FgRed, color.Bold)
	colorYellow  = color.New(color.FgYellow)
)

// builtinHelp describes the commands every interpreter understands.
var builtinHelp = []struct {
	usage string
	short string
}{
	{"print VARIABLE...", "Print the value of each variable."},
	{"help [SEARCH]", "Show help for all commands, or those whose name contains SEARCH."},
	{"call -f FILE [-d]", "Run the instructions in FILE, -d echoes each line first."},
	{"write-script -f FILE", "Write every instruction run so far to FILE."},
	{strings.Join(ExitKeywords, ", "), "Stop reading instructions."},
}

// colorPrinter applies colors only when they're enabled for the output.
type colorPrinter struct {
	enabled bool
}

func (c colorPrinter) Sprint(col *color.Color, s string) string {
	if !c.enabled {
		return s
	}
	col.EnableColor()
	return col.Sprint(s)
}

// GenerateHelp renders the usage, description and parameters of a command.
func GenerateHelp(d *Descriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Usage: %s [OPTION]...\n", d.Name)
	fmt.Fprintf(&sb, "\t%s\n", d.Description)

	for _, p := range d.Params {
		req := ""
		if p.Required {
			req = "required"
		}
		fmt.Fprintf(&sb, helpLineFormat, formatKeys(p.Keys), p.Kind, req, p.Help)
	}

	return sb.String()
}

// printHelp writes help for every registered command followed by the
// built-ins.
func (i *Interpreter) printHelp(w io.Writer) {
	if i.description != "" {
		fmt.Fprintln(w, i.colors.Sprint(colorBold, i.description))
	}
	fmt.Fprintln(w, helpHint)

	for _, d := range i.registry.Descriptors() {
		fmt.Fprintln(w, GenerateHelp(d))
	}

	fmt.Fprintln(w, i.colors.Sprint(colorBold, "Built-in commands:"))
	for _, b := range builtinHelp {
		fmt.Fprintf(w, "  %-28s%s\n", b.usage, b.short)
	}
}

// printSearchHelp writes help for the commands whose name contains search.
func (i *Interpreter) printSearchHelp(w io.Writer, search string) {
	found := i.registry.Search(search)
	if len(found) == 0 {
		fmt.Fprintf(w, "No commands found with search: %s\n", search)
		return
	}

	fmt.Fprintln(w, i.colors.Sprint(colorBold, "Commands found with search:"))
	fmt.Fprintln(w)
	for _, d := range found {
		fmt.Fprintln(w, GenerateHelp(d))
	}
}

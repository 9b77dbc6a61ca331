package core

import (
	"fmt"
	"strings"

	"github.com/pborman/getopt/v2"
)

func (i *Interpreter) printVariables(names []string) {
	for _, name := range names {
		value, ok := i.session.Variables.Get(name)
		if !ok {
			fmt.Fprintln(i.out, "Object does not exist.")
			continue
		}
		fmt.Fprintln(i.out, value)
	}
}

func (i *Interpreter) help(args []string) {
	if len(args) == 0 {
		i.printHelp(i.out)
		return
	}
	i.printSearchHelp(i.out, args[0])
}

// callScript replays a script file against the current session.
func (i *Interpreter) callScript(args []string) error {
	flags := getopt.New()
	file := flags.StringLong("file", 'f', "", "script to run", "FILE")
	debug := flags.BoolLong("debug", 'd', "echo each line before running it")

	if err := flags.Getopt(append([]string{CallKeyword}, args...), nil); err != nil {
		return &ArgumentError{Msg: err.Error()}
	}

	path := strings.ReplaceAll(*file, "'", "")
	if path == "" {
		return &ArgumentError{Msg: "No file given for call"}
	}

	return i.RunFile(path, *debug)
}

// writeScript exports the session history.
func (i *Interpreter) writeScript(args []string) error {
	flags := getopt.New()
	file := flags.StringLong("file", 'f', "", "file to write the history to", "FILE")

	if err := flags.Getopt(append([]string{WriteScriptKeyword}, args...), nil); err != nil {
		return &ArgumentError{Msg: err.Error()}
	}

	path := strings.ReplaceAll(*file, "'", "")
	if path == "" {
		return &ArgumentError{Msg: "No output file given"}
	}

	return i.session.History.Export(i.fs, path)
}

package commands

import (
	"io"
	"sort"

	"github.com/josephlewis42/goosecli/core"
)

// Env holds what commands can reach while they run.
type Env struct {
	// Out receives anything a command prints.
	Out io.Writer
}

// CommandFactory builds a command bound to an environment.
type CommandFactory func(env *Env) *core.Descriptor

// allCommands holds a list of all registered commands.
var allCommands []CommandFactory

// addCmd registers a command.
func addCmd(factory CommandFactory) {
	allCommands = append(allCommands, factory)
}

// ListCommands returns every sample command bound to env, sorted by name.
func ListCommands(env *Env) []*core.Descriptor {
	var out []*core.Descriptor
	for _, factory := range allCommands {
		out = append(out, factory(env))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// param is shorthand for declaring a parameter.
func param(kind core.Kind, required bool, help string, keys ...string) core.ParameterSpec {
	return core.ParameterSpec{
		Keys:     keys,
		Required: required,
		Kind:     kind,
		Help:     help,
	}
}

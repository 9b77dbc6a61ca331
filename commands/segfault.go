package commands

import (
	"github.com/josephlewis42/goosecli/core"
)

// Segfault always fails by panicking, showing how the interpreter reports
// faults raised inside commands.
func Segfault(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "segfault",
		Description: "Crash.",
		Invoke: func(_ interface{}, _ core.Args) (interface{}, error) {
			var values []int
			return values[1], nil
		},
	}
}

func init() {
	addCmd(Segfault)
}

package commands

import (
	"github.com/josephlewis42/goosecli/core"
)

// Counter is a tally shared by every counter command of an interpreter.
type Counter struct {
	value int64
}

// counterOwner gives the counter commands one shared Counter.
var counterOwner = &core.Owner{
	Name: "counter",
	New: func() (interface{}, error) {
		return &Counter{}, nil
	},
}

// Increment adds to the counter and returns the new value.
func Increment(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "increment",
		Description: "Add to the counter, by one unless a step is given.",
		Owner:       counterOwner,
		Params: []core.ParameterSpec{
			param(core.KindLong, false, "amount to add", "-b", "--by"),
		},
		Invoke: func(owner interface{}, args core.Args) (interface{}, error) {
			counter := owner.(*Counter)

			step := int64(1)
			if args.IsSet(0) {
				step = args.Int64(0)
			}
			counter.value += step
			return counter.value, nil
		},
	}
}

// Count returns the counter's value.
func Count(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "count",
		Description: "Show the counter.",
		Owner:       counterOwner,
		Invoke: func(owner interface{}, args core.Args) (interface{}, error) {
			return owner.(*Counter).value, nil
		},
	}
}

// Reset zeroes the counter.
func Reset(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "reset",
		Description: "Set the counter back to zero.",
		Owner:       counterOwner,
		Invoke: func(owner interface{}, args core.Args) (interface{}, error) {
			owner.(*Counter).value = 0
			return nil, nil
		},
	}
}

func init() {
	addCmd(Increment)
	addCmd(Count)
	addCmd(Reset)
}

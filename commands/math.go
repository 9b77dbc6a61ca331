package commands

import (
	"github.com/josephlewis42/goosecli/core"
	"github.com/pkg/errors"
)

// Add sums two integers.
func Add(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "add",
		Description: "Add two integers.",
		Params: []core.ParameterSpec{
			param(core.KindInteger, true, "first addend", "-x", "--xvalue"),
			param(core.KindInteger, true, "second addend", "-y", "--yvalue"),
		},
		Invoke: func(_ interface{}, args core.Args) (interface{}, error) {
			return args.Int(0) + args.Int(1), nil
		},
	}
}

// Multiply multiplies two doubles.
func Multiply(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "multiply",
		Description: "Multiply two numbers.",
		Params: []core.ParameterSpec{
			param(core.KindDouble, true, "multiplicand", "-a"),
			param(core.KindDouble, true, "multiplier", "-b"),
		},
		Invoke: func(_ interface{}, args core.Args) (interface{}, error) {
			return args.Float64(0) * args.Float64(1), nil
		},
	}
}

// Divide does integer division of two longs.
func Divide(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "divide",
		Description: "Divide two whole numbers, discarding the remainder.",
		Params: []core.ParameterSpec{
			param(core.KindLong, true, "dividend", "-n", "--numerator"),
			param(core.KindLong, true, "divisor", "-m", "--denominator"),
		},
		Invoke: func(_ interface{}, args core.Args) (interface{}, error) {
			if args.Int64(1) == 0 {
				return nil, errors.New("division by zero")
			}
			return args.Int64(0) / args.Int64(1), nil
		},
	}
}

func init() {
	addCmd(Add)
	addCmd(Multiply)
	addCmd(Divide)
}

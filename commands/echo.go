package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/josephlewis42/goosecli/core"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 16)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// Echo prints its text and returns it.
func Echo(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "echo",
		Description: "Display a line of text.",
		Params: []core.ParameterSpec{
			param(core.KindString, true, "text to display", "-t", "--text"),
			param(core.KindBoolean, false, "interpret backslash escapes", "-e", "--escapes"),
		},
		Invoke: func(_ interface{}, args core.Args) (interface{}, error) {
			text := args.String(0)
			if args.Bool(1) {
				text = unescape(text)
			}

			fmt.Fprintln(env.Out, text)
			return text, nil
		},
	}
}

// Upper returns its text in upper case.
func Upper(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "upper",
		Description: "Convert text to upper case.",
		Params: []core.ParameterSpec{
			param(core.KindString, true, "text to convert", "-t", "--text"),
		},
		Invoke: func(_ interface{}, args core.Args) (interface{}, error) {
			return strings.ToUpper(args.String(0)), nil
		},
	}
}

// Concat joins two strings with an optional separator.
func Concat(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "concat",
		Description: "Join two pieces of text.",
		Params: []core.ParameterSpec{
			param(core.KindString, true, "left text", "-l", "--left"),
			param(core.KindString, true, "right text", "-r", "--right"),
			param(core.KindString, false, "separator placed between the two", "-s", "--separator"),
		},
		Invoke: func(_ interface{}, args core.Args) (interface{}, error) {
			return args.String(0) + args.String(2) + args.String(1), nil
		},
	}
}

func init() {
	addCmd(Echo)
	addCmd(Upper)
	addCmd(Concat)
}

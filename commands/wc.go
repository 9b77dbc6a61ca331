package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/josephlewis42/goosecli/core"
)

type wcCount struct {
	bytes int
	lines int
	chars int
	words int

	inSpace bool
}

func (w *wcCount) Write(data []byte) (int, error) {
	for _, c := range data {
		isFirstByte := w.bytes == 0
		w.bytes++

		// Assume UTF-8 characters. Bytes following the leading byte always
		// have MSB of 0b10 indicating they're part of a previous character.
		if c < 0b10000000 || c > 0b10111111 {
			w.chars++
		}

		if c == '\n' {
			w.lines++
		}

		if unicode.IsSpace(rune(c)) {
			w.inSpace = true
		} else {
			if w.inSpace || isFirstByte {
				w.words++
			}
			w.inSpace = false
		}
	}

	return len(data), nil
}

func countText(text string) *wcCount {
	var out wcCount
	fmt.Fprint(&out, text)
	return &out
}

// Wc counts the lines, words and bytes of a piece of text, printing all three
// and returning the number of words.
func Wc(env *Env) *core.Descriptor {
	return &core.Descriptor{
		Name:        "wc",
		Description: "Count the newlines, words, and bytes in text.",
		Params: []core.ParameterSpec{
			param(core.KindString, true, "text to count", "-t", "--text"),
			param(core.KindBoolean, false, "count characters instead of bytes", "-m", "--chars"),
		},
		Invoke: func(_ interface{}, args core.Args) (interface{}, error) {
			count := countText(args.String(0))

			cols := []string{fmt.Sprint(count.lines), fmt.Sprint(count.words)}
			if args.Bool(1) {
				cols = append(cols, fmt.Sprint(count.chars))
			} else {
				cols = append(cols, fmt.Sprint(count.bytes))
			}
			fmt.Fprintln(env.Out, strings.Join(cols, " "))

			return count.words, nil
		},
	}
}

func init() {
	addCmd(Wc)
}
